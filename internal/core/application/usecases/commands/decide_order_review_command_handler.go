package commands

import (
	"context"
	"log/slog"

	"shippix/internal/core/domain/model/content"
	"shippix/internal/core/ports"
)

// DecideOrderReviewCommandHandler applies an admin decision to the review list.
// The decision is not stored: the caller renders the returned list once.
type DecideOrderReviewCommandHandler struct {
	content ports.ContentRepository
	logger  *slog.Logger
}

func NewDecideOrderReviewCommandHandler(content ports.ContentRepository, logger *slog.Logger) DecideOrderReviewCommandHandler {
	return DecideOrderReviewCommandHandler{content: content, logger: logger.With("component", "decide_order_review_handler")}
}

func (h DecideOrderReviewCommandHandler) Handle(ctx context.Context, cmd DecideOrderReviewCommand) ([]content.AdminOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	console, err := h.content.AdminConsole(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := content.Decide(console.Orders, cmd.OrderID(), cmd.Decision())
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order reviewed", "order_id", cmd.OrderID(), "decision", string(cmd.Decision()))
	return orders, nil
}
