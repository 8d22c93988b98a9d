package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/domain/events"
	"seguradora_xpto/internal/usecase/interfaces"
)

var (
	ErrPolicyNotFound             = errors.New("policy not found")
	ErrInvalidPolicyID            = errors.New("invalid policy id")
	ErrPolicyAlreadyExists        = errors.New("policy already exists for this proposal")
	ErrProposalNotApproved        = errors.New("only approved proposals can be contracted")
	ErrPropostaServiceUnavailable = errors.New("proposta service unavailable")
)

// ContractProposalInput carries the request to turn an approved proposal
// into a policy.
type ContractProposalInput struct {
	ProposalID          string
	CoveragePeriodStart time.Time
	CoveragePeriodEnd   time.Time
}

// IPolicyUseCase exposes the contracting service operations.

type IPolicyUseCase interface {
	Contract(ctx context.Context, input ContractProposalInput) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
	HandlePropostaAprovada(ctx context.Context, event events.PropostaAprovadaEvent) error
}

type PolicyUseCase struct {
	repo           interfaces.IPolicyRepository
	proposalClient interfaces.IProposalClient
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository, proposalClient interfaces.IProposalClient) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, proposalClient: proposalClient}
}

// Contract creates a policy for an approved proposal.
//
// The early existence check gives a fast answer for the common duplicate
// call; the write itself still relies on the repository's uniqueness
// constraint, so a conflict surfaced at create time is reported the same way.
func (u *PolicyUseCase) Contract(ctx context.Context, input ContractProposalInput) (entities.Policy, error) {
	proposalID := strings.TrimSpace(input.ProposalID)
	if proposalID == "" {
		return entities.Policy{}, entities.ErrPolicyProposalIDRequired
	}
	log.Printf("[contratacao][usecase] contract start proposal_id=%s", proposalID)

	exists, err := u.repo.ExistsByProposalID(ctx, proposalID)
	if err != nil {
		log.Printf("[contratacao][usecase] existence check failed proposal_id=%s err=%v", proposalID, err)
		return entities.Policy{}, err
	}
	if exists {
		log.Printf("[contratacao][usecase] contract rejected proposal_id=%s reason=already-contracted", proposalID)
		return entities.Policy{}, ErrPolicyAlreadyExists
	}

	summary, err := u.proposalClient.GetProposal(ctx, proposalID)
	if err != nil {
		log.Printf("[contratacao][usecase] proposal fetch failed proposal_id=%s err=%v", proposalID, err)
		return entities.Policy{}, fmt.Errorf("%w: %v", ErrPropostaServiceUnavailable, err)
	}
	if summary.ID == "" {
		log.Printf("[contratacao][usecase] proposal not found upstream proposal_id=%s", proposalID)
		return entities.Policy{}, ErrProposalNotFound
	}
	if summary.Status != entities.ProposalStatusAprovada {
		log.Printf("[contratacao][usecase] contract rejected proposal_id=%s status=%s", proposalID, summary.Status)
		return entities.Policy{}, ErrProposalNotApproved
	}

	policy, err := entities.NewPolicy(proposalID, input.CoveragePeriodStart, input.CoveragePeriodEnd, summary.PremiumAmount)
	if err != nil {
		log.Printf("[contratacao][usecase] policy construction rejected proposal_id=%s err=%v", proposalID, err)
		return entities.Policy{}, err
	}

	created, err := u.repo.Create(ctx, policy)
	if err != nil {
		if errors.Is(err, interfaces.ErrPolicyConflict) {
			// Lost the race against a concurrent contract call.
			log.Printf("[contratacao][usecase] contract conflict at create proposal_id=%s", proposalID)
			return entities.Policy{}, ErrPolicyAlreadyExists
		}
		log.Printf("[contratacao][usecase] contract persist failed proposal_id=%s err=%v", proposalID, err)
		return entities.Policy{}, err
	}
	log.Printf("[contratacao][usecase] contract success proposal_id=%s policy_id=%s policy_number=%s", proposalID, created.ID(), created.PolicyNumber())
	return created, nil
}

func (u *PolicyUseCase) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID() == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) List(ctx context.Context) ([]entities.Policy, error) {
	return u.repo.List(ctx)
}

// HandlePropostaAprovada reacts to an approval event from the queue.
// Contracting stays an explicit client decision, so the handler only records
// the notification; returning an error leaves the message on the queue for
// redelivery.
func (u *PolicyUseCase) HandlePropostaAprovada(ctx context.Context, event events.PropostaAprovadaEvent) error {
	if strings.TrimSpace(event.ProposalID) == "" {
		return errors.New("approval event missing proposal id")
	}

	log.Printf("[contratacao][consumer] proposta aprovada proposal_id=%s client=%s category=%s coverage=%.2f premium=%.2f",
		event.ProposalID, event.ClientName, event.Category, event.CoverageAmount, event.PremiumAmount)
	return nil
}
