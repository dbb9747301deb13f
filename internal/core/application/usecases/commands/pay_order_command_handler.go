package commands

import (
	"context"
	"log/slog"
	"time"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
)

// PayOrderCommandHandler moves an order from AwaitingPayment to Completed. No
// money moves: the payment is recorded on the handoff and logged.
type PayOrderCommandHandler struct {
	store  ports.HandoffStore
	now    func() time.Time
	logger *slog.Logger
}

// NewPayOrderCommandHandler creates the handler. now stamps the completion
// time; pass time.Now outside of tests.
func NewPayOrderCommandHandler(store ports.HandoffStore, now func() time.Time, logger *slog.Logger) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		store:  store,
		now:    now,
		logger: logger.With("component", "pay_order_handler"),
	}
}

// Handle returns the token of the stored CompletedOrder, which the dashboard
// redeems to list the order.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	payment, err := takeAs[order.PaymentHandoff](ctx, h.store, cmd.Token())
	if err != nil {
		return kernel.UUID{}, err
	}

	completed, err := payment.Pay(cmd.Method(), h.now())
	if err != nil {
		return kernel.UUID{}, err
	}

	token, err := h.store.Put(ctx, completed)
	if err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "Order paid",
		"order_id", completed.OrderID().String(),
		"payment_method", completed.PaymentMethod().Code(),
		"amount", completed.ShippingCost().String(),
	)
	return token, nil
}
