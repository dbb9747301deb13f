package commands

import (
	"context"
	"log/slog"

	"shippix/internal/core/domain/model/shipment"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/core/ports"
)

// RescheduleShipmentCommandHandler accepts a reschedule request while the
// shipment has not yet gone out for delivery. The request is only logged.
type RescheduleShipmentCommandHandler struct {
	content ports.ContentRepository
	logger  *slog.Logger
}

func NewRescheduleShipmentCommandHandler(content ports.ContentRepository, logger *slog.Logger) RescheduleShipmentCommandHandler {
	return RescheduleShipmentCommandHandler{content: content, logger: logger.With("component", "reschedule_shipment_handler")}
}

// Handle returns *errs.ObjectNotFoundError for unknown shipments,
// shipment.ErrRescheduleNotAllowed when it is too late and
// *validation.InvalidFormError for bad input.
func (h RescheduleShipmentCommandHandler) Handle(ctx context.Context, cmd RescheduleShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sample, err := h.content.ShipmentSample(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	details, err := shipment.NewDetails(cmd.ShipmentID(), sample.CurrentStep)
	if err != nil {
		return err
	}
	if err := details.CheckReschedule(); err != nil {
		return err
	}

	values := cmd.Values()
	if err := validation.RescheduleForm().Validate(values); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Shipment reschedule requested",
		"shipment_id", cmd.ShipmentID(),
		"reason", values.Get("reason"),
		"pickup_date", values.Get("pickupDate"),
		"pickup_time", values.Get("pickupTime"),
		"address", values.Get("selectedAddress"),
	)
	return nil
}
