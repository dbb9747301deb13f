package queries

import (
	"errors"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/shipment"
	"shippix/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery builds the fulfillment view of a paid order.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	completed order.CompletedOrder

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(completed order.CompletedOrder) (GetOrderStatusQuery, error) {
	q := GetOrderStatusQuery{guard: guard.NewConstructorGuard()}

	if err := completed.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}
	q.completed = completed

	return q, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) Completed() order.CompletedOrder {
	return q.completed
}

// GetOrderStatusQueryResponse is the order status page.
type GetOrderStatusQueryResponse struct {
	OrderNumber string
	Order       order.CompletedOrder
	Track       shipment.Track
}
