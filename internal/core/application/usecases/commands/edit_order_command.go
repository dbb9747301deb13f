package commands

import (
	"errors"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand sends the order shown on the review page back to the create-order form.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	token kernel.UUID

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(token kernel.UUID) (EditOrderCommand, error) {
	cmd := EditOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setToken(token); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// Token addresses the ReviewHandoff shown on the review page.
func (c EditOrderCommand) Token() kernel.UUID {
	return c.token
}

func (c *EditOrderCommand) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.token = token
	return nil
}
