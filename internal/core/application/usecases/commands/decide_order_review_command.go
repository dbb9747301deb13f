package commands

import (
	"errors"
	"strings"

	"shippix/internal/core/domain/model/content"
	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var ErrDecideOrderReviewCommandIsNotConstructed = errors.New(
	"DecideOrderReviewCommand must be created via NewDecideOrderReviewCommand constructor",
)

// DecideOrderReviewCommand approves or rejects a pending order in the admin
// console.
type DecideOrderReviewCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	decision content.Decision

	guard guard.ConstructorGuard
}

func NewDecideOrderReviewCommand(orderID string, decision content.Decision) (DecideOrderReviewCommand, error) {
	cmd := DecideOrderReviewCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDecision(decision),
	); err != nil {
		return DecideOrderReviewCommand{}, err
	}

	return cmd, nil
}

func (c DecideOrderReviewCommand) Validate() error {
	return c.guard.Validate(ErrDecideOrderReviewCommandIsNotConstructed)
}

func (c DecideOrderReviewCommand) OrderID() string            { return c.orderID }
func (c DecideOrderReviewCommand) Decision() content.Decision { return c.decision }

func (c *DecideOrderReviewCommand) setOrderID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = id
	return nil
}

func (c *DecideOrderReviewCommand) setDecision(d content.Decision) error {
	parsed, err := content.ParseDecision(string(d))
	if err != nil {
		return err
	}
	c.decision = parsed
	return nil
}
