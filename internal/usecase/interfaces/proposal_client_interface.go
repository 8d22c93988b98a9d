package interfaces

import (
	"context"

	"seguradora_xpto/internal/domain/entities"
)

// IProposalClient is the synchronous query port to the proposal service.
//
// A remote 404 is reported as a zero-value summary with a nil error; any
// other failure (transport error, unexpected status) returns an error.
type IProposalClient interface {
	GetProposal(ctx context.Context, proposalID string) (entities.ProposalSummary, error)
}
