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

const (
	defaultPoliciesTableName = "contratacoes"
	policiesIDIndex          = "id-index"
)

type policyItem struct {
	ProposalID          string `dynamodbav:"proposal_id"`
	ID                  string `dynamodbav:"id"`
	PolicyNumber        string `dynamodbav:"policy_number"`
	ContractedAt        string `dynamodbav:"contracted_at"`
	CoveragePeriodStart string `dynamodbav:"coverage_period_start"`
	CoveragePeriodEnd   string `dynamodbav:"coverage_period_end"`
	PremiumAmount       string `dynamodbav:"premium_amount"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: proposal_id (string)
//   - GSI: id-index (PK: id)
//
// Using the proposal id as the partition key makes the one-policy-per-proposal
// rule a storage-level constraint: the conditional put below loses any race
// between concurrent contracting calls.

type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRATACOES_TABLE", defaultPoliciesTableName),
	}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#proposal_id)"),
		ExpressionAttributeNames: map[string]string{
			"#proposal_id": "proposal_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Policy{}, interfaces.ErrPolicyConflict
		}
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(policiesIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Items) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it)
}

func (r *PolicyDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"proposal_id": &types.AttributeValueMemberS{Value: proposalID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it)
}

func (r *PolicyDynamoRepository) List(ctx context.Context) ([]entities.Policy, error) {
	policies := make([]entities.Policy, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it policyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromPolicyItem(it)
			if err != nil {
				return nil, err
			}
			policies = append(policies, p)
		}
	}

	sort.Slice(policies, func(i, j int) bool {
		return policies[i].ContractedAt().After(policies[j].ContractedAt())
	})
	return policies, nil
}

func (r *PolicyDynamoRepository) ExistsByProposalID(ctx context.Context, proposalID string) (bool, error) {
	p, err := r.GetByProposalID(ctx, proposalID)
	if err != nil {
		return false, err
	}
	return p.ID() != "", nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		ProposalID:          p.ProposalID(),
		ID:                  p.ID(),
		PolicyNumber:        p.PolicyNumber(),
		ContractedAt:        p.ContractedAt().UTC().Format(time.RFC3339Nano),
		CoveragePeriodStart: p.CoveragePeriodStart().UTC().Format(time.RFC3339Nano),
		CoveragePeriodEnd:   p.CoveragePeriodEnd().UTC().Format(time.RFC3339Nano),
		PremiumAmount:       floatToString(p.Premium().Value()),
	}
}

func fromPolicyItem(it policyItem) (entities.Policy, error) {
	premiumValue, _ := strconv.ParseFloat(it.PremiumAmount, 64)
	premium, err := valueobjects.NewMonetaryAmount(premiumValue)
	if err != nil {
		return entities.Policy{}, err
	}

	contractedAt, _ := time.Parse(time.RFC3339Nano, it.ContractedAt)
	start, _ := time.Parse(time.RFC3339Nano, it.CoveragePeriodStart)
	end, _ := time.Parse(time.RFC3339Nano, it.CoveragePeriodEnd)

	return entities.RestorePolicy(
		it.ID,
		it.ProposalID,
		it.PolicyNumber,
		contractedAt,
		start,
		end,
		premium,
	), nil
}
