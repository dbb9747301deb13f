package commands

import (
	"context"
	"log/slog"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
)

// SaveDraftCommandHandler records that the owner parked an order. Drafts are
// not persisted: the handoff is consumed and the order is only logged.
type SaveDraftCommandHandler struct {
	store  ports.HandoffStore
	logger *slog.Logger
}

func NewSaveDraftCommandHandler(store ports.HandoffStore, logger *slog.Logger) SaveDraftCommandHandler {
	return SaveDraftCommandHandler{store: store, logger: logger.With("component", "save_draft_handler")}
}

func (h SaveDraftCommandHandler) Handle(ctx context.Context, cmd SaveDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	review, err := takeAs[order.ReviewHandoff](ctx, h.store, cmd.Token())
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order saved as draft",
		"order_id", review.OrderID().String(),
		"customer_name", review.Draft().CustomerName(),
		"city", review.Draft().City(),
		"shipping_cost", review.ShippingCost().String(),
	)
	return nil
}
