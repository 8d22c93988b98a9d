package events

import "time"

// PropostaAprovadaEventType tags the approval event in message metadata.
const PropostaAprovadaEventType = "PropostaAprovada"

// PropostaAprovadaEvent is the wire payload published when a proposal
// transitions to aprovada. Consumers treat delivery as at-least-once.
type PropostaAprovadaEvent struct {
	ProposalID     string    `json:"proposalId"`
	ClientName     string    `json:"clientName"`
	IdentityNumber string    `json:"identityNumber"`
	Category       string    `json:"category"`
	CoverageAmount float64   `json:"coverageAmount"`
	PremiumAmount  float64   `json:"premiumAmount"`
	ApprovedAt     time.Time `json:"approvedAt"`
	EventType      string    `json:"eventType"`
	EventTimestamp time.Time `json:"eventTimestamp"`
}
