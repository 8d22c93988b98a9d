package interfaces

import (
	"context"

	"seguradora_xpto/internal/domain/events"
)

// IMessagePublisher abstracts the event channel (e.g. AWS SNS) used to
// announce proposal approvals. Publication is best-effort from the caller's
// point of view: the status change use case logs failures and moves on.
type IMessagePublisher interface {
	PublishPropostaAprovada(ctx context.Context, event events.PropostaAprovadaEvent) error
}
