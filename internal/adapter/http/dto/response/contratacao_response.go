package response

import (
	"time"

	"seguradora_xpto/internal/domain/entities"
)

type ContratacaoResponse struct {
	ID                  string    `json:"id"`
	ProposalID          string    `json:"proposalId"`
	PolicyNumber        string    `json:"policyNumber"`
	ContractedAt        time.Time `json:"contractedAt"`
	CoveragePeriodStart time.Time `json:"coveragePeriodStart"`
	CoveragePeriodEnd   time.Time `json:"coveragePeriodEnd"`
	PremiumAmount       float64   `json:"premiumAmount"`
}

func FromPolicy(p entities.Policy) ContratacaoResponse {
	return ContratacaoResponse{
		ID:                  p.ID(),
		ProposalID:          p.ProposalID(),
		PolicyNumber:        p.PolicyNumber(),
		ContractedAt:        p.ContractedAt(),
		CoveragePeriodStart: p.CoveragePeriodStart(),
		CoveragePeriodEnd:   p.CoveragePeriodEnd(),
		PremiumAmount:       p.Premium().Value(),
	}
}

func FromPolicies(policies []entities.Policy) []ContratacaoResponse {
	out := make([]ContratacaoResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p))
	}
	return out
}
