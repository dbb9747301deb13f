package queries

import (
	"errors"
	"strings"

	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var ErrGetShipmentDetailsQueryIsNotConstructed = errors.New(
	"GetShipmentDetailsQuery must be created via NewGetShipmentDetailsQuery constructor",
)

// GetShipmentDetailsQuery looks up a shipment by its tracking ID.
type GetShipmentDetailsQuery struct { //nolint:recvcheck //using for validation
	shipmentID string

	guard guard.ConstructorGuard
}

func NewGetShipmentDetailsQuery(shipmentID string) (GetShipmentDetailsQuery, error) {
	q := GetShipmentDetailsQuery{guard: guard.NewConstructorGuard()}

	if err := q.setShipmentID(shipmentID); err != nil {
		return GetShipmentDetailsQuery{}, err
	}

	return q, nil
}

func (q GetShipmentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentDetailsQueryIsNotConstructed)
}

func (q GetShipmentDetailsQuery) ShipmentID() string {
	return q.shipmentID
}

func (q *GetShipmentDetailsQuery) setShipmentID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	q.shipmentID = id
	return nil
}
