package content

import (
	"fmt"

	"shippix/internal/pkg/errs"
)

// Review states of an order in the admin console.
const (
	ReviewPending   = "pending"
	ReviewApproved  = "approved"
	ReviewRejected  = "rejected"
	ReviewInTransit = "in-transit"
)

// Decision is the admin's verdict on a pending order.
type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

// ParseDecision accepts "approve" and "reject".
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case Approve, Reject:
		return d, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is not approve or reject", s))
	}
}

// AdminOrder is an order submitted by a business owner, as listed for review.
type AdminOrder struct {
	ID           string `yaml:"id"`
	OrderNumber  string `yaml:"orderNumber"`
	BusinessName string `yaml:"businessName"`
	Customer     string `yaml:"customer"`
	Address      string `yaml:"address"`
	Weight       string `yaml:"weight"`
	Distance     string `yaml:"distance"`
	Description  string `yaml:"description"`
	Price        string `yaml:"price"`
	Status       string `yaml:"status"`
}

// IsPending reports whether the order still waits for a decision.
func (o AdminOrder) IsPending() bool {
	return o.Status == ReviewPending
}

// Decide returns a copy of orders with the decision applied to the order with
// the given ID. Only pending orders can be decided.
func Decide(orders []AdminOrder, id string, d Decision) ([]AdminOrder, error) {
	out := append([]AdminOrder(nil), orders...)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if !out[i].IsPending() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"order", fmt.Errorf("order %s is %s, only pending orders can be reviewed", id, out[i].Status))
		}
		if d == Approve {
			out[i].Status = ReviewApproved
		} else {
			out[i].Status = ReviewRejected
		}
		return out, nil
	}
	return nil, errs.NewObjectNotFoundError("orderID", id)
}
