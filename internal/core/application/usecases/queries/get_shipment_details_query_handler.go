package queries

import (
	"context"

	"shippix/internal/core/domain/model/shipment"
	"shippix/internal/core/ports"
)

// GetShipmentDetailsQueryHandler returns the delivery track of a shipment.
// Unknown IDs yield an *errs.ObjectNotFoundError.
type GetShipmentDetailsQueryHandler struct {
	content ports.ContentRepository
}

func NewGetShipmentDetailsQueryHandler(content ports.ContentRepository) GetShipmentDetailsQueryHandler {
	return GetShipmentDetailsQueryHandler{content: content}
}

func (h GetShipmentDetailsQueryHandler) Handle(ctx context.Context, query GetShipmentDetailsQuery) (shipment.Details, error) {
	if err := query.Validate(); err != nil {
		return shipment.Details{}, err
	}

	sample, err := h.content.ShipmentSample(ctx, query.ShipmentID())
	if err != nil {
		return shipment.Details{}, err
	}

	details, err := shipment.NewDetails(query.ShipmentID(), sample.CurrentStep)
	if err != nil {
		return shipment.Details{}, err
	}

	details.ETA = sample.ETA
	details.DriverNote = sample.DriverNote
	details.DriverName = sample.DriverName
	details.DriverRating = sample.DriverRating
	details.PickupAddress = sample.PickupAddress
	return details, nil
}
