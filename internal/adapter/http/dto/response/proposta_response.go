package response

import (
	"time"

	"seguradora_xpto/internal/domain/entities"
)

type PropostaResponse struct {
	ID             string     `json:"id"`
	ClientName     string     `json:"clientName"`
	IdentityNumber string     `json:"identityNumber"`
	Category       string     `json:"category"`
	CoverageAmount float64    `json:"coverageAmount"`
	PremiumAmount  float64    `json:"premiumAmount"`
	Status         int        `json:"status"`
	StatusLabel    string     `json:"statusLabel"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

func FromProposal(p entities.Proposal) PropostaResponse {
	return PropostaResponse{
		ID:             p.ID(),
		ClientName:     p.ClientName(),
		IdentityNumber: p.ClientCPF().String(),
		Category:       p.InsuranceType(),
		CoverageAmount: p.Coverage().Value(),
		PremiumAmount:  p.Premium().Value(),
		Status:         int(p.Status()),
		StatusLabel:    p.Status().String(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func FromProposals(proposals []entities.Proposal) []PropostaResponse {
	out := make([]PropostaResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, FromProposal(p))
	}
	return out
}
