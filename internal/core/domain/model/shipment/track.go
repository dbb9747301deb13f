package shipment

import (
	"fmt"

	"shippix/internal/pkg/errs"
)

// StepState is the state of one milestone of a Track.
type StepState int

const (
	Pending StepState = iota
	Current
	Complete
)

// String returns the badge label of the state.
func (s StepState) String() string {
	switch s {
	case Complete:
		return "Complete"
	case Current:
		return "Current"
	default:
		return "Pending"
	}
}

// Milestone is a named point of a timeline.
type Milestone struct {
	Title       string
	Description string
}

// Step is a milestone together with its state on a particular track.
type Step struct {
	Milestone
	State StepState
}

// Delivery milestones of the shipment details page.
const (
	StepPending        = "Pending"
	StepPickedUp       = "Picked Up"
	StepInTransit      = "In Transit"
	StepOutForDelivery = "Out For Delivery"
	StepDelivered      = "Delivered"
)

// Fulfillment milestones of the order status page.
const (
	StepPaymentConfirmed = "Payment Confirmed"
	StepAwaitingApproval = "Awaiting Approval"
	StepApprovedReady    = "Approved & Ready"
	StepPickupScheduled  = "Pickup Scheduled"
	StepFulfillInTransit = "In Transit"
	StepShipped          = "Shipped"
)

// DeliveryMilestones returns the delivery timeline.
func DeliveryMilestones() []Milestone {
	return []Milestone{
		{Title: StepPending},
		{Title: StepPickedUp},
		{Title: StepInTransit},
		{Title: StepOutForDelivery},
		{Title: StepDelivered},
	}
}

// FulfillmentMilestones returns the timeline of a paid order.
func FulfillmentMilestones() []Milestone {
	return []Milestone{
		{Title: StepPaymentConfirmed, Description: "Payment has been processed successfully"},
		{Title: StepAwaitingApproval, Description: "Under review by our shipping team"},
		{Title: StepApprovedReady, Description: "Order approved and ready for shipping"},
		{Title: StepPickupScheduled, Description: "Carrier pickup has been scheduled"},
		{Title: StepFulfillInTransit, Description: "Package is on its way to destination"},
		{Title: StepShipped, Description: "Package delivered successfully"},
	}
}

// Track is a timeline with one current milestone. Milestones before it are
// complete and those after it are pending.
type Track struct {
	milestones []Milestone
	current    int
}

// NewTrack positions a timeline at the milestone titled current.
func NewTrack(milestones []Milestone, current string) (Track, error) {
	if len(milestones) == 0 {
		return Track{}, errs.NewValueIsRequiredError("milestones")
	}
	for i, m := range milestones {
		if m.Title == current {
			return Track{milestones: append([]Milestone(nil), milestones...), current: i}, nil
		}
	}
	return Track{}, errs.NewValueIsInvalidErrorWithCause(
		"current", fmt.Errorf("%q is not a milestone of the track", current))
}

// Steps returns every milestone with its state.
func (t Track) Steps() []Step {
	steps := make([]Step, len(t.milestones))
	for i, m := range t.milestones {
		state := Pending
		switch {
		case i < t.current:
			state = Complete
		case i == t.current:
			state = Current
		}
		steps[i] = Step{Milestone: m, State: state}
	}
	return steps
}

// Current returns the title of the current milestone.
func (t Track) Current() string {
	if len(t.milestones) == 0 {
		return ""
	}
	return t.milestones[t.current].Title
}

// Reached reports whether the track has arrived at or passed the milestone.
func (t Track) Reached(title string) bool {
	for i, m := range t.milestones {
		if m.Title == title {
			return i <= t.current
		}
	}
	return false
}
