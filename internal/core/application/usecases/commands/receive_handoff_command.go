package commands

import (
	"errors"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/guard"
)

var ErrReceiveHandoffCommandIsNotConstructed = errors.New(
	"ReceiveHandoffCommand must be created via NewReceiveHandoffCommand constructor",
)

// ReceiveHandoffCommand is issued by a page opening with a handoff token. The
// page expects a handoff of one stage only.
type ReceiveHandoffCommand struct { //nolint:recvcheck //using for validation
	token    kernel.UUID
	expected order.Stage

	guard guard.ConstructorGuard
}

func NewReceiveHandoffCommand(token kernel.UUID, expected order.Stage) (ReceiveHandoffCommand, error) {
	cmd := ReceiveHandoffCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setExpected(expected),
	); err != nil {
		return ReceiveHandoffCommand{}, err
	}

	return cmd, nil
}

func (c ReceiveHandoffCommand) Validate() error {
	return c.guard.Validate(ErrReceiveHandoffCommandIsNotConstructed)
}

func (c ReceiveHandoffCommand) Token() kernel.UUID    { return c.token }
func (c ReceiveHandoffCommand) Expected() order.Stage { return c.expected }

func (c *ReceiveHandoffCommand) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.token = token
	return nil
}

func (c *ReceiveHandoffCommand) setExpected(expected order.Stage) error {
	if err := expected.Validate(); err != nil {
		return err
	}
	c.expected = expected
	return nil
}
