package commands

import (
	"context"
	"time"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
)

// EstimateShippingCommandHandler quotes the shipping fee of a package. Each
// quote is bounded by the handler timeout on top of the caller's context.
//
// Example:
//
//	handler := NewEstimateShippingCommandHandler(estimator, 5*time.Second)
//	cmd, _ := NewEstimateShippingCommand(draft.WeightKg())
//
//	estimate, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, context.DeadlineExceeded) {
//	    // pricing took too long
//	}
type EstimateShippingCommandHandler struct {
	quoter  ports.ShippingQuoter
	timeout time.Duration
}

// NewEstimateShippingCommandHandler creates the handler. A zero timeout leaves
// the caller's context as the only bound.
func NewEstimateShippingCommandHandler(quoter ports.ShippingQuoter, timeout time.Duration) EstimateShippingCommandHandler {
	return EstimateShippingCommandHandler{quoter: quoter, timeout: timeout}
}

func (h EstimateShippingCommandHandler) Handle(ctx context.Context, cmd EstimateShippingCommand) (order.Estimate, error) {
	if err := cmd.Validate(); err != nil {
		return order.Estimate{}, err
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	return h.quoter.Quote(ctx, cmd.WeightKg())
}
