package shipment

import (
	"errors"
	"strings"

	"shippix/internal/pkg/errs"
)

// ErrRescheduleNotAllowed is returned when a shipment is already out for delivery.
var ErrRescheduleNotAllowed = errors.New("shipment can no longer be rescheduled")

// Details is the shipment details page: the delivery track of one shipment
// together with the driver information shown next to the map.
type Details struct {
	ID            string
	Track         Track
	ETA           string
	DriverNote    string
	DriverName    string
	DriverRating  string
	PickupAddress string
}

// NewDetails positions the delivery track of shipment id at current.
func NewDetails(id, current string) (Details, error) {
	if strings.TrimSpace(id) == "" {
		return Details{}, errs.NewValueIsRequiredError("id")
	}
	track, err := NewTrack(DeliveryMilestones(), current)
	if err != nil {
		return Details{}, err
	}
	return Details{ID: id, Track: track}, nil
}

// CanReschedule reports whether the pickup may still be moved. Once the
// shipment is out for delivery it is too late.
func (d Details) CanReschedule() bool {
	return !d.Track.Reached(StepOutForDelivery)
}

// CheckReschedule returns ErrRescheduleNotAllowed when CanReschedule is false.
func (d Details) CheckReschedule() error {
	if !d.CanReschedule() {
		return ErrRescheduleNotAllowed
	}
	return nil
}
