package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/domain/valueobjects"
	"seguradora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "propostas"

type proposalItem struct {
	ID             string `dynamodbav:"id"`
	ClientName     string `dynamodbav:"client_name"`
	ClientCPF      string `dynamodbav:"client_cpf"`
	InsuranceType  string `dynamodbav:"insurance_type"`
	CoverageAmount string `dynamodbav:"coverage_amount"`
	PremiumAmount  string `dynamodbav:"premium_amount"`
	Status         int    `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at,omitempty"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing uses a Scan; proposal volume is small and results are sorted here
// by creation time, newest first.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSTAS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *ProposalDynamoRepository) ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberN{Value: strconv.Itoa(int(status))},
		},
	})
}

func (r *ProposalDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Proposal, error) {
	proposals := make([]entities.Proposal, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromProposalItem(it)
			if err != nil {
				return nil, err
			}
			proposals = append(proposals, p)
		}
	}

	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt().After(proposals[j].CreatedAt())
	})
	return proposals, nil
}

// Update persists the mutable attributes (status, updated_at) of an existing
// proposal.
func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	updatedAt := ""
	if p.UpdatedAt() != nil {
		updatedAt = p.UpdatedAt().UTC().Format(time.RFC3339Nano)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID()},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberN{Value: strconv.Itoa(int(p.Status()))},
			":updated_at": &types.AttributeValueMemberS{Value: updatedAt},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func (r *ProposalDynamoRepository) Exists(ctx context.Context, id string) (bool, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p.ID() != "", nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	updatedAt := ""
	if p.UpdatedAt() != nil {
		updatedAt = p.UpdatedAt().UTC().Format(time.RFC3339Nano)
	}
	return proposalItem{
		ID:             p.ID(),
		ClientName:     p.ClientName(),
		ClientCPF:      p.ClientCPF().String(),
		InsuranceType:  p.InsuranceType(),
		CoverageAmount: floatToString(p.Coverage().Value()),
		PremiumAmount:  floatToString(p.Premium().Value()),
		Status:         int(p.Status()),
		CreatedAt:      p.CreatedAt().UTC().Format(time.RFC3339Nano),
		UpdatedAt:      updatedAt,
	}
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	cpf, err := valueobjects.NewCPF(it.ClientCPF)
	if err != nil {
		return entities.Proposal{}, err
	}

	coverageValue, _ := strconv.ParseFloat(it.CoverageAmount, 64)
	coverage, err := valueobjects.NewMonetaryAmount(coverageValue)
	if err != nil {
		return entities.Proposal{}, err
	}
	premiumValue, _ := strconv.ParseFloat(it.PremiumAmount, 64)
	premium, err := valueobjects.NewMonetaryAmount(premiumValue)
	if err != nil {
		return entities.Proposal{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var updatedAt *time.Time
	if it.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
			updatedAt = &t
		}
	}

	return entities.RestoreProposal(
		it.ID,
		it.ClientName,
		cpf,
		it.InsuranceType,
		coverage,
		premium,
		entities.ProposalStatus(it.Status),
		createdAt,
		updatedAt,
	), nil
}
