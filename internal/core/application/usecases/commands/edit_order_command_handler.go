package commands

import (
	"context"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
)

// EditOrderCommandHandler moves an order from Reviewing back to Drafting. The
// create-order page opened with the returned token is prefilled with the draft.
type EditOrderCommandHandler struct {
	store ports.HandoffStore
}

func NewEditOrderCommandHandler(store ports.HandoffStore) EditOrderCommandHandler {
	return EditOrderCommandHandler{store: store}
}

// Handle returns the token of the stored DraftHandoff.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	review, err := takeAs[order.ReviewHandoff](ctx, h.store, cmd.Token())
	if err != nil {
		return kernel.UUID{}, err
	}

	draft, err := review.Edit()
	if err != nil {
		return kernel.UUID{}, err
	}

	return h.store.Put(ctx, draft)
}
