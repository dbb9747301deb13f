package commands

import (
	"errors"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand approves the order shown on the review page ("Approve & Create Shipment").
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	token kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveOrderCommand(token kernel.UUID) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setToken(token); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// Token addresses the ReviewHandoff shown on the review page.
func (c ApproveOrderCommand) Token() kernel.UUID {
	return c.token
}

func (c *ApproveOrderCommand) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.token = token
	return nil
}
