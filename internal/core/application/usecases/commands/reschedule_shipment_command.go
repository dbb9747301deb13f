package commands

import (
	"errors"
	"maps"
	"strings"

	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var ErrRescheduleShipmentCommandIsNotConstructed = errors.New(
	"RescheduleShipmentCommand must be created via NewRescheduleShipmentCommand constructor",
)

// RescheduleShipmentCommand asks to move the pickup of a shipment.
type RescheduleShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID string
	values     validation.Values

	guard guard.ConstructorGuard
}

func NewRescheduleShipmentCommand(shipmentID string, values validation.Values) (RescheduleShipmentCommand, error) {
	cmd := RescheduleShipmentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setValues(values),
	); err != nil {
		return RescheduleShipmentCommand{}, err
	}

	return cmd, nil
}

func (c RescheduleShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleShipmentCommandIsNotConstructed)
}

func (c RescheduleShipmentCommand) ShipmentID() string { return c.shipmentID }

func (c RescheduleShipmentCommand) Values() validation.Values {
	return maps.Clone(c.values)
}

func (c *RescheduleShipmentCommand) setShipmentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	c.shipmentID = id
	return nil
}

func (c *RescheduleShipmentCommand) setValues(values validation.Values) error {
	if values == nil {
		return errs.NewValueIsRequiredError("values")
	}
	c.values = maps.Clone(values)
	return nil
}
