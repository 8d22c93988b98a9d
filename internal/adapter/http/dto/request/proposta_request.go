package request

import (
	"strings"

	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/usecase"
)

// CriarPropostaRequest is the payload accepted when registering a new
// insurance proposal.
type CriarPropostaRequest struct {
	ClientName     string  `json:"clientName" binding:"required"`
	IdentityNumber string  `json:"identityNumber" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	CoverageAmount float64 `json:"coverageAmount" binding:"required"`
	PremiumAmount  float64 `json:"premiumAmount" binding:"required"`
}

func (r CriarPropostaRequest) ToInput() usecase.CreateProposalInput {
	return usecase.CreateProposalInput{
		ClientName:     strings.TrimSpace(r.ClientName),
		IdentityNumber: r.IdentityNumber,
		Category:       strings.TrimSpace(r.Category),
		CoverageAmount: r.CoverageAmount,
		PremiumAmount:  r.PremiumAmount,
	}
}

// AlterarStatusRequest carries the target status for a proposal review
// decision.
type AlterarStatusRequest struct {
	NewStatus int `json:"newStatus" binding:"required"`
}

func (r AlterarStatusRequest) ToStatus() entities.ProposalStatus {
	return entities.ProposalStatus(r.NewStatus)
}
