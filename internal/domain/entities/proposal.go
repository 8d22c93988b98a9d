package entities

import (
	"errors"
	"strings"
	"time"

	"seguradora_xpto/internal/domain/valueobjects"

	"github.com/google/uuid"
)

// ProposalStatus is the lifecycle status of an insurance proposal.
//
// The numeric values are part of the wire contract (HTTP payloads and the
// approval event) and must not be reordered.
type ProposalStatus int

const (
	ProposalStatusEmAnalise ProposalStatus = 1
	ProposalStatusAprovada  ProposalStatus = 2
	ProposalStatusRejeitada ProposalStatus = 3
)

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusEmAnalise, ProposalStatusAprovada, ProposalStatusRejeitada:
		return true
	}
	return false
}

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusEmAnalise:
		return "em_analise"
	case ProposalStatusAprovada:
		return "aprovada"
	case ProposalStatusRejeitada:
		return "rejeitada"
	}
	return "desconhecido"
}

var (
	ErrInvalidClientName       = errors.New("client name must have at least 3 characters")
	ErrInvalidInsuranceType    = errors.New("invalid insurance type")
	ErrInvalidStatusTransition = errors.New("invalid proposal status transition")
)

// Valid insurance lines, matched case-insensitively.
var insuranceTypes = []string{"Vida", "Auto", "Residencial", "Empresarial", "Viagem"}

// Proposal is an insurance proposal going through analysis.
//
// Lifecycle: created as em_analise; the only mutation is ChangeStatus, and
// aprovada/rejeitada are terminal. Fields are unexported so a Proposal can
// only exist through NewProposal (or RestoreProposal when hydrating from
// storage), which keeps the validation invariants structural.
type Proposal struct {
	id            string
	clientName    string
	clientCPF     valueobjects.CPF
	insuranceType string
	coverage      valueobjects.MonetaryAmount
	premium       valueobjects.MonetaryAmount
	status        ProposalStatus
	createdAt     time.Time
	updatedAt     *time.Time
}

// NewProposal validates every attribute and returns a proposal in analysis.
// The first validation failure wins.
func NewProposal(clientName, clientCPF, insuranceType string, coverage, premium float64) (Proposal, error) {
	if err := validateClientName(clientName); err != nil {
		return Proposal{}, err
	}
	if err := validateInsuranceType(insuranceType); err != nil {
		return Proposal{}, err
	}

	cpf, err := valueobjects.NewCPF(clientCPF)
	if err != nil {
		return Proposal{}, err
	}
	coverageAmount, err := valueobjects.NewMonetaryAmount(coverage)
	if err != nil {
		return Proposal{}, err
	}
	premiumAmount, err := valueobjects.NewMonetaryAmount(premium)
	if err != nil {
		return Proposal{}, err
	}

	return Proposal{
		id:            uuid.NewString(),
		clientName:    clientName,
		clientCPF:     cpf,
		insuranceType: insuranceType,
		coverage:      coverageAmount,
		premium:       premiumAmount,
		status:        ProposalStatusEmAnalise,
		createdAt:     time.Now().UTC(),
	}, nil
}

// RestoreProposal rebuilds a proposal previously persisted by this service.
// It is meant for repositories only and performs no business validation.
func RestoreProposal(
	id, clientName string,
	clientCPF valueobjects.CPF,
	insuranceType string,
	coverage, premium valueobjects.MonetaryAmount,
	status ProposalStatus,
	createdAt time.Time,
	updatedAt *time.Time,
) Proposal {
	return Proposal{
		id:            id,
		clientName:    clientName,
		clientCPF:     clientCPF,
		insuranceType: insuranceType,
		coverage:      coverage,
		premium:       premium,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ChangeStatus applies the status state machine:
//   - a transition to the current status is an error, not a no-op
//   - aprovada and rejeitada are terminal
func (p *Proposal) ChangeStatus(newStatus ProposalStatus) error {
	if newStatus == p.status {
		return ErrInvalidStatusTransition
	}
	if p.status == ProposalStatusAprovada || p.status == ProposalStatusRejeitada {
		return ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	p.status = newStatus
	p.updatedAt = &now
	return nil
}

// CanBeContracted reports whether a policy may be created from this proposal.
func (p Proposal) CanBeContracted() bool {
	return p.status == ProposalStatusAprovada
}

func (p Proposal) ID() string                            { return p.id }
func (p Proposal) ClientName() string                    { return p.clientName }
func (p Proposal) ClientCPF() valueobjects.CPF           { return p.clientCPF }
func (p Proposal) InsuranceType() string                 { return p.insuranceType }
func (p Proposal) Coverage() valueobjects.MonetaryAmount { return p.coverage }
func (p Proposal) Premium() valueobjects.MonetaryAmount  { return p.premium }
func (p Proposal) Status() ProposalStatus                { return p.status }
func (p Proposal) CreatedAt() time.Time                  { return p.createdAt }
func (p Proposal) UpdatedAt() *time.Time                 { return p.updatedAt }

func validateClientName(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return ErrInvalidClientName
	}
	return nil
}

func validateInsuranceType(insuranceType string) error {
	for _, t := range insuranceTypes {
		if strings.EqualFold(t, insuranceType) {
			return nil
		}
	}
	return ErrInvalidInsuranceType
}
