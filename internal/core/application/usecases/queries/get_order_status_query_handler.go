package queries

import (
	"context"

	"shippix/internal/core/domain/model/shipment"
)

// GetOrderStatusQueryHandler places a freshly paid order on the fulfillment
// track. Paid orders always wait for admin approval next.
type GetOrderStatusQueryHandler struct{}

func NewGetOrderStatusQueryHandler() GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{}
}

func (h GetOrderStatusQueryHandler) Handle(_ context.Context, query GetOrderStatusQuery) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	track, err := shipment.NewTrack(shipment.FulfillmentMilestones(), shipment.StepAwaitingApproval)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	completed := query.Completed()
	id := completed.OrderID()
	return GetOrderStatusQueryResponse{
		OrderNumber: "ORD-" + id.ShortCode(),
		Order:       completed,
		Track:       track,
	}, nil
}
