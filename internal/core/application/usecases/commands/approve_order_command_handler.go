package commands

import (
	"context"
	"log/slog"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
)

// ApproveOrderCommandHandler moves an order from Reviewing to AwaitingPayment.
//
// Example:
//
//	cmd, _ := NewApproveOrderCommand(reviewToken)
//	paymentToken, err := handler.Handle(ctx, cmd)
//	return c.Redirect(http.StatusSeeOther, "/payment?h="+paymentToken.String())
type ApproveOrderCommandHandler struct {
	store  ports.HandoffStore
	logger *slog.Logger
}

func NewApproveOrderCommandHandler(store ports.HandoffStore, logger *slog.Logger) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{store: store, logger: logger.With("component", "approve_order_handler")}
}

// Handle returns the token of the stored PaymentHandoff.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	review, err := takeAs[order.ReviewHandoff](ctx, h.store, cmd.Token())
	if err != nil {
		return kernel.UUID{}, err
	}

	payment, err := review.Approve()
	if err != nil {
		return kernel.UUID{}, err
	}

	token, err := h.store.Put(ctx, payment)
	if err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "Order approved", "order_id", payment.OrderID().String())
	return token, nil
}
