package ports

import (
	"context"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
)

// HandoffStore keeps the transfer objects passed between the pages of the order
// workflow. Every handoff is addressed by a one-shot token that travels in the
// redirect URL of the next page.
type HandoffStore interface {
	// Put stores a handoff and returns the token addressing it. The handoff
	// expires after the store's TTL.
	Put(ctx context.Context, handoff order.Handoff) (kernel.UUID, error)

	// Take returns the handoff stored under token and removes it, so a token
	// can be redeemed once. Unknown, expired and already taken tokens yield an
	// *errs.ObjectNotFoundError. So does a handoff at a stage other than
	// stage, which is left in place for the page it belongs to.
	Take(ctx context.Context, token kernel.UUID, stage order.Stage) (order.Handoff, error)

	// DeleteExpired drops every expired handoff and returns how many were removed.
	DeleteExpired(ctx context.Context) (int, error)
}
