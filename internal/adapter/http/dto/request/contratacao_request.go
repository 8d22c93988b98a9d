package request

import (
	"strings"
	"time"

	"seguradora_xpto/internal/usecase"
)

// ContratarPropostaRequest is the payload accepted when contracting an
// approved proposal into a policy.
type ContratarPropostaRequest struct {
	ProposalID          string    `json:"proposalId" binding:"required"`
	CoveragePeriodStart time.Time `json:"coveragePeriodStart" binding:"required"`
	CoveragePeriodEnd   time.Time `json:"coveragePeriodEnd" binding:"required"`
}

func (r ContratarPropostaRequest) ToInput() usecase.ContractProposalInput {
	return usecase.ContractProposalInput{
		ProposalID:          strings.TrimSpace(r.ProposalID),
		CoveragePeriodStart: r.CoveragePeriodStart,
		CoveragePeriodEnd:   r.CoveragePeriodEnd,
	}
}
