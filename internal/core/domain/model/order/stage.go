package order

import (
	"fmt"

	"shippix/internal/pkg/errs"
)

// Stage is the position of an order in the submission workflow.
//
// State transitions:
//
//	Drafting ──Review──> Reviewing ──Approve──> AwaitingPayment ──Pay──> Completed
//	    ^                    │
//	    └───────Edit─────────┘
//
// Each stage has its own handoff type carrying only the fields valid at that
// point: DraftHandoff, ReviewHandoff, PaymentHandoff and CompletedOrder.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Drafting is the stage of an order being filled in on the create-order page.
	Drafting

	// Reviewing is the stage of an estimated draft waiting for the owner's approval.
	Reviewing

	// AwaitingPayment is the stage of an approved order before the shipping fee is paid.
	AwaitingPayment

	// Completed is the final stage. No further transitions are allowed.
	Completed
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:         "Unknown",
		Drafting:        "Drafting",
		Reviewing:       "Reviewing",
		AwaitingPayment: "AwaitingPayment",
		Completed:       "Completed",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Drafting:        "Drafting",
		Reviewing:       "Reviewing",
		AwaitingPayment: "AwaitingPayment",
		Completed:       "Completed",
	}
}

// Validate returns an error for Unknown and any value outside the defined stages.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values print as "Unknown".
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Review transitions Drafting to Reviewing.
func (s Stage) Review() (Stage, error) {
	return s.transition(Drafting, Reviewing, "review")
}

// Approve transitions Reviewing to AwaitingPayment.
func (s Stage) Approve() (Stage, error) {
	return s.transition(Reviewing, AwaitingPayment, "approve")
}

// Edit sends a reviewed order back to Drafting.
func (s Stage) Edit() (Stage, error) {
	return s.transition(Reviewing, Drafting, "edit")
}

// Pay transitions AwaitingPayment to Completed.
func (s Stage) Pay() (Stage, error) {
	return s.transition(AwaitingPayment, Completed, "pay")
}

func (s Stage) transition(from, to Stage, action string) (Stage, error) {
	if s != from {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to %s", s.String(), action),
		)
	}
	return to, nil
}
