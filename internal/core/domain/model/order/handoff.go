package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var (
	ErrDraftHandoffIsNotConstructed   = errors.New("DraftHandoff must be created via its constructor")
	ErrReviewHandoffIsNotConstructed  = errors.New("ReviewHandoff must be created via NewReviewHandoff")
	ErrPaymentHandoffIsNotConstructed = errors.New("PaymentHandoff must be created via ReviewHandoff.Approve")
	ErrCompletedOrderIsNotConstructed = errors.New("CompletedOrder must be created via PaymentHandoff.Pay")
)

// Handoff is the transfer object passed from one page of the order workflow to
// the next. Each implementation belongs to exactly one Stage and carries only
// the fields valid at that stage:
//
//	DraftHandoff    Drafting         order sent back for editing
//	ReviewHandoff   Reviewing        draft and its estimate
//	PaymentHandoff  AwaitingPayment  customer, destination and fee
//	CompletedOrder  Completed        paid order shown on the dashboard
type Handoff interface {
	Stage() Stage
	OrderID() kernel.UUID
	Validate() error
}

// DraftHandoff carries a reviewed order back to the create-order page.
type DraftHandoff struct {
	orderID kernel.UUID
	draft   Draft
	guard   guard.ConstructorGuard
}

// RestoreDraftHandoff rebuilds a DraftHandoff read back from a handoff store.
func RestoreDraftHandoff(orderID kernel.UUID, draft Draft) (DraftHandoff, error) {
	if err := errors.Join(orderID.Validate(), draft.Validate()); err != nil {
		return DraftHandoff{}, err
	}
	return DraftHandoff{orderID: orderID, draft: draft, guard: guard.NewConstructorGuard()}, nil
}

func (h DraftHandoff) Stage() Stage         { return Drafting }
func (h DraftHandoff) OrderID() kernel.UUID { return h.orderID }
func (h DraftHandoff) Draft() Draft         { return h.draft }

func (h DraftHandoff) Validate() error {
	return h.guard.Validate(ErrDraftHandoffIsNotConstructed)
}

// Resubmit moves the edited draft back to review under the same order ID.
func (h DraftHandoff) Resubmit(draft Draft, estimate Estimate) (ReviewHandoff, error) {
	if err := h.Validate(); err != nil {
		return ReviewHandoff{}, err
	}
	if _, err := h.Stage().Review(); err != nil {
		return ReviewHandoff{}, err
	}
	return assembleReviewHandoff(h.orderID, draft, estimate)
}

// ReviewHandoff is an estimated draft waiting on the review page.
type ReviewHandoff struct {
	orderID  kernel.UUID
	draft    Draft
	estimate Estimate
	guard    guard.ConstructorGuard
}

// NewReviewHandoff moves a draft from Drafting to Reviewing and assigns it a new
// order ID. The estimate must have been computed for the draft's weight.
//
// Example:
//
//	estimate, _ := estimator.Estimate(draft.WeightKg())
//	review, err := order.NewReviewHandoff(draft, estimate)
func NewReviewHandoff(draft Draft, estimate Estimate) (ReviewHandoff, error) {
	return assembleReviewHandoff(kernel.NewUUID(), draft, estimate)
}

// RestoreReviewHandoff rebuilds a ReviewHandoff read back from a handoff store.
func RestoreReviewHandoff(orderID kernel.UUID, draft Draft, estimate Estimate) (ReviewHandoff, error) {
	if err := orderID.Validate(); err != nil {
		return ReviewHandoff{}, err
	}
	return assembleReviewHandoff(orderID, draft, estimate)
}

func assembleReviewHandoff(orderID kernel.UUID, draft Draft, estimate Estimate) (ReviewHandoff, error) {
	if err := errors.Join(draft.Validate(), estimate.Validate()); err != nil {
		return ReviewHandoff{}, err
	}
	if draft.WeightKg() != estimate.WeightKg() {
		return ReviewHandoff{}, errs.NewValueIsInvalidErrorWithCause(
			"estimate",
			fmt.Errorf("estimate was computed for %v kg, draft weighs %v kg", estimate.WeightKg(), draft.WeightKg()),
		)
	}
	return ReviewHandoff{
		orderID:  orderID,
		draft:    draft,
		estimate: estimate,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (h ReviewHandoff) Stage() Stage         { return Reviewing }
func (h ReviewHandoff) OrderID() kernel.UUID { return h.orderID }
func (h ReviewHandoff) Draft() Draft         { return h.draft }
func (h ReviewHandoff) Estimate() Estimate   { return h.estimate }

// ShippingCost returns the quoted fee.
func (h ReviewHandoff) ShippingCost() Cost {
	return h.estimate.Cost()
}

func (h ReviewHandoff) Validate() error {
	return h.guard.Validate(ErrReviewHandoffIsNotConstructed)
}

// Approve moves the order to AwaitingPayment, keeping only the fields the
// payment page needs.
func (h ReviewHandoff) Approve() (PaymentHandoff, error) {
	if err := h.Validate(); err != nil {
		return PaymentHandoff{}, err
	}
	if _, err := h.Stage().Approve(); err != nil {
		return PaymentHandoff{}, err
	}
	return PaymentHandoff{
		orderID:          h.orderID,
		customerName:     h.draft.CustomerName(),
		city:             h.draft.City(),
		itemsDescription: h.draft.ItemsDescription(),
		shippingCost:     h.estimate.Cost(),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Edit sends the order back to Drafting with its draft intact.
func (h ReviewHandoff) Edit() (DraftHandoff, error) {
	if err := h.Validate(); err != nil {
		return DraftHandoff{}, err
	}
	if _, err := h.Stage().Edit(); err != nil {
		return DraftHandoff{}, err
	}
	return DraftHandoff{orderID: h.orderID, draft: h.draft, guard: guard.NewConstructorGuard()}, nil
}

// PaymentHandoff is an approved order waiting on the payment page.
type PaymentHandoff struct {
	orderID          kernel.UUID
	customerName     string
	city             string
	itemsDescription string
	shippingCost     Cost
	guard            guard.ConstructorGuard
}

// RestorePaymentHandoff rebuilds a PaymentHandoff read back from a handoff store.
func RestorePaymentHandoff(orderID kernel.UUID, customerName, city, itemsDescription string, shippingCost Cost) (PaymentHandoff, error) {
	if err := errors.Join(
		orderID.Validate(),
		requireText("customerName", customerName),
		shippingCost.Validate(),
	); err != nil {
		return PaymentHandoff{}, err
	}
	return PaymentHandoff{
		orderID:          orderID,
		customerName:     customerName,
		city:             city,
		itemsDescription: itemsDescription,
		shippingCost:     shippingCost,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (h PaymentHandoff) Stage() Stage             { return AwaitingPayment }
func (h PaymentHandoff) OrderID() kernel.UUID     { return h.orderID }
func (h PaymentHandoff) CustomerName() string     { return h.customerName }
func (h PaymentHandoff) City() string             { return h.city }
func (h PaymentHandoff) ItemsDescription() string { return h.itemsDescription }
func (h PaymentHandoff) ShippingCost() Cost       { return h.shippingCost }

func (h PaymentHandoff) Validate() error {
	return h.guard.Validate(ErrPaymentHandoffIsNotConstructed)
}

// Pay completes the order with the chosen method at the given time.
func (h PaymentHandoff) Pay(method PaymentMethod, at time.Time) (CompletedOrder, error) {
	if err := errors.Join(h.Validate(), method.Validate(), requireTime(at)); err != nil {
		return CompletedOrder{}, err
	}
	if _, err := h.Stage().Pay(); err != nil {
		return CompletedOrder{}, err
	}
	return CompletedOrder{
		orderID:          h.orderID,
		customerName:     h.customerName,
		city:             h.city,
		itemsDescription: h.itemsDescription,
		shippingCost:     h.shippingCost,
		paymentMethod:    method,
		completedAt:      at.UTC(),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// CompletedOrder is a paid order. It is the last handoff of the workflow and is
// only displayed, never persisted.
type CompletedOrder struct {
	orderID          kernel.UUID
	customerName     string
	city             string
	itemsDescription string
	shippingCost     Cost
	paymentMethod    PaymentMethod
	completedAt      time.Time
	guard            guard.ConstructorGuard
}

// RestoreCompletedOrder rebuilds a CompletedOrder read back from a handoff store.
func RestoreCompletedOrder(
	orderID kernel.UUID,
	customerName, city, itemsDescription string,
	shippingCost Cost,
	method PaymentMethod,
	completedAt time.Time,
) (CompletedOrder, error) {
	payment, err := RestorePaymentHandoff(orderID, customerName, city, itemsDescription, shippingCost)
	if err != nil {
		return CompletedOrder{}, err
	}
	return payment.Pay(method, completedAt)
}

func (o CompletedOrder) Stage() Stage                 { return Completed }
func (o CompletedOrder) OrderID() kernel.UUID         { return o.orderID }
func (o CompletedOrder) CustomerName() string         { return o.customerName }
func (o CompletedOrder) City() string                 { return o.city }
func (o CompletedOrder) ItemsDescription() string     { return o.itemsDescription }
func (o CompletedOrder) ShippingCost() Cost           { return o.shippingCost }
func (o CompletedOrder) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o CompletedOrder) CompletedAt() time.Time       { return o.completedAt }

func (o CompletedOrder) Validate() error {
	return o.guard.Validate(ErrCompletedOrderIsNotConstructed)
}

func requireText(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}
	return nil
}
