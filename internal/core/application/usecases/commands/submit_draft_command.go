package commands

import (
	"errors"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/guard"
)

var ErrSubmitDraftCommandIsNotConstructed = errors.New(
	"SubmitDraftCommand must be created via NewSubmitDraftCommand constructor",
)

// SubmitDraftCommand sends a filled-in create-order form to review.
//
// When the form was opened through "Edit Order Details", resume carries the
// token of the DraftHandoff so the order keeps its ID.
//
// Example:
//
//	cmd, err := NewSubmitDraftCommand(values, nil)
//	token, err := handler.Handle(ctx, cmd)
//	return c.Redirect(http.StatusSeeOther, "/review-order?h="+token.String())
type SubmitDraftCommand struct { //nolint:recvcheck //using for validation
	values validation.Values
	resume *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitDraftCommand copies values so later changes by the caller do not leak
// into the command.
func NewSubmitDraftCommand(values validation.Values, resume *kernel.UUID) (SubmitDraftCommand, error) {
	cmd := SubmitDraftCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setResume(resume); err != nil {
		return SubmitDraftCommand{}, err
	}

	cmd.values = make(validation.Values, len(values))
	for k, v := range values {
		cmd.values[k] = v
	}

	return cmd, nil
}

func (c SubmitDraftCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDraftCommandIsNotConstructed)
}

func (c SubmitDraftCommand) Values() validation.Values {
	return c.values
}

// Resume returns the DraftHandoff token, or nil for a new order.
func (c SubmitDraftCommand) Resume() *kernel.UUID {
	return c.resume
}

func (c *SubmitDraftCommand) setResume(resume *kernel.UUID) error {
	if resume == nil {
		return nil
	}
	if err := resume.Validate(); err != nil {
		return err
	}

	token := *resume
	c.resume = &token
	return nil
}
