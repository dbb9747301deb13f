package commands

import (
	"errors"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/pkg/guard"
)

var ErrSaveDraftCommandIsNotConstructed = errors.New(
	"SaveDraftCommand must be created via NewSaveDraftCommand constructor",
)

// SaveDraftCommand parks the order shown on the review page ("Save as Draft").
type SaveDraftCommand struct { //nolint:recvcheck //using for validation
	token kernel.UUID

	guard guard.ConstructorGuard
}

func NewSaveDraftCommand(token kernel.UUID) (SaveDraftCommand, error) {
	cmd := SaveDraftCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setToken(token); err != nil {
		return SaveDraftCommand{}, err
	}

	return cmd, nil
}

func (c SaveDraftCommand) Validate() error {
	return c.guard.Validate(ErrSaveDraftCommandIsNotConstructed)
}

// Token addresses the ReviewHandoff shown on the review page.
func (c SaveDraftCommand) Token() kernel.UUID {
	return c.token
}

func (c *SaveDraftCommand) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.token = token
	return nil
}
