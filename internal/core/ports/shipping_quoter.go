package ports

import (
	"context"

	"shippix/internal/core/domain/model/order"
)

// ShippingQuoter prices a package. The in-process implementation is
// services.ShippingEstimator; a remote pricing backend would satisfy the same
// contract, including cancellation through ctx.
type ShippingQuoter interface {
	Quote(ctx context.Context, weightKg float64) (order.Estimate, error)
}
