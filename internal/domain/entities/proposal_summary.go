package entities

import "time"

// ProposalSummary is the contracting service's read-only view of a proposal,
// fetched from the proposal service over HTTP. It may lag behind the latest
// committed status; callers re-validate it at decision time.
type ProposalSummary struct {
	ID             string         `json:"id"`
	ClientName     string         `json:"clientName"`
	IdentityNumber string         `json:"identityNumber"`
	Category       string         `json:"category"`
	CoverageAmount float64        `json:"coverageAmount"`
	PremiumAmount  float64        `json:"premiumAmount"`
	Status         ProposalStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      *time.Time     `json:"updatedAt"`
}
