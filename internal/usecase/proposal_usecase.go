package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/domain/events"
	"seguradora_xpto/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
)

// CreateProposalInput carries the client-facing attributes of a new proposal.
type CreateProposalInput struct {
	ClientName     string
	IdentityNumber string
	Category       string
	CoverageAmount float64
	PremiumAmount  float64
}

// IProposalUseCase exposes the proposal service operations.

type IProposalUseCase interface {
	Create(ctx context.Context, input CreateProposalInput) (entities.Proposal, error)
	ChangeStatus(ctx context.Context, id string, newStatus entities.ProposalStatus) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, status *entities.ProposalStatus) ([]entities.Proposal, error)
}

type ProposalUseCase struct {
	repo      interfaces.IProposalRepository
	publisher interfaces.IMessagePublisher
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, publisher interfaces.IMessagePublisher) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, publisher: publisher}
}

func (u *ProposalUseCase) Create(ctx context.Context, input CreateProposalInput) (entities.Proposal, error) {
	p, err := entities.NewProposal(
		input.ClientName,
		input.IdentityNumber,
		input.Category,
		input.CoverageAmount,
		input.PremiumAmount,
	)
	if err != nil {
		log.Printf("[proposta][usecase] create rejected err=%v", err)
		return entities.Proposal{}, err
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[proposta][usecase] create persist failed proposal_id=%s err=%v", p.ID(), err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposta][usecase] create success proposal_id=%s status=%s", created.ID(), created.Status())
	return created, nil
}

// ChangeStatus applies the entity state machine and persists the result.
// When the destination is aprovada the approval event is published
// best-effort: a publish failure is logged, never surfaced, because the
// status change is already committed.
func (u *ProposalUseCase) ChangeStatus(ctx context.Context, id string, newStatus entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if !newStatus.IsValid() {
		return entities.Proposal{}, ErrInvalidProposalStatus
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID() == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}

	if err := p.ChangeStatus(newStatus); err != nil {
		log.Printf("[proposta][usecase] change-status rejected proposal_id=%s status=%s new_status=%s err=%v", id, p.Status(), newStatus, err)
		return entities.Proposal{}, err
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[proposta][usecase] change-status persist failed proposal_id=%s err=%v", id, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposta][usecase] change-status success proposal_id=%s status=%s", updated.ID(), updated.Status())

	if newStatus == entities.ProposalStatusAprovada {
		u.publishPropostaAprovada(ctx, updated)
	}

	return updated, nil
}

func (u *ProposalUseCase) publishPropostaAprovada(ctx context.Context, p entities.Proposal) {
	if u.publisher == nil {
		log.Printf("[proposta][usecase] publisher not configured; skipping approval event proposal_id=%s", p.ID())
		return
	}

	approvedAt := time.Now().UTC()
	if p.UpdatedAt() != nil {
		approvedAt = *p.UpdatedAt()
	}

	event := events.PropostaAprovadaEvent{
		ProposalID:     p.ID(),
		ClientName:     p.ClientName(),
		IdentityNumber: p.ClientCPF().String(),
		Category:       p.InsuranceType(),
		CoverageAmount: p.Coverage().Value(),
		PremiumAmount:  p.Premium().Value(),
		ApprovedAt:     approvedAt,
		EventType:      events.PropostaAprovadaEventType,
		EventTimestamp: time.Now().UTC(),
	}

	if err := u.publisher.PublishPropostaAprovada(ctx, event); err != nil {
		// The status change is durable at this point; the event is a
		// best-effort notification.
		log.Printf("[proposta][usecase] approval event publish failed proposal_id=%s err=%v", p.ID(), err)
		return
	}
	log.Printf("[proposta][usecase] approval event published proposal_id=%s", p.ID())
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID() == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context, status *entities.ProposalStatus) ([]entities.Proposal, error) {
	if status != nil {
		if !status.IsValid() {
			return nil, ErrInvalidProposalStatus
		}
		return u.repo.ListByStatus(ctx, *status)
	}
	return u.repo.List(ctx)
}
