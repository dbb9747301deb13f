package queries

import (
	"errors"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery builds the business dashboard, optionally with the order
// that was just paid.
//
// Example:
//
//	query, err := NewGetDashboardQuery(nil)          // plain visit
//	query, err := NewGetDashboardQuery(&completed)   // redirected from payment
//	board, err := handler.Handle(ctx, query)
type GetDashboardQuery struct { //nolint:recvcheck //using for validation
	completed *order.CompletedOrder

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(completed *order.CompletedOrder) (GetDashboardQuery, error) {
	q := GetDashboardQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCompleted(completed); err != nil {
		return GetDashboardQuery{}, err
	}

	return q, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// Completed returns the order to record, or nil.
func (q GetDashboardQuery) Completed() *order.CompletedOrder {
	return q.completed
}

func (q *GetDashboardQuery) setCompleted(completed *order.CompletedOrder) error {
	if completed == nil {
		return nil
	}
	if err := completed.Validate(); err != nil {
		return err
	}

	c := *completed
	q.completed = &c
	return nil
}
