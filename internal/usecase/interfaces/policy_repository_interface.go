package interfaces

import (
	"context"
	"errors"

	"seguradora_xpto/internal/domain/entities"
)

// ErrPolicyConflict is returned by Create when the storage-level uniqueness
// constraint on proposal id rejects the write. It closes the race between
// concurrent contracting calls for the same proposal.
var ErrPolicyConflict = errors.New("policy already exists for this proposal")

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// Not-found is reported as a zero-value Policy with a nil error.

type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
	ExistsByProposalID(ctx context.Context, proposalID string) (bool, error)
}
