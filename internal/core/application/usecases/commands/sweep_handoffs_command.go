package commands

import (
	"errors"

	"shippix/internal/pkg/guard"
)

// SweepHandoffsCommand drops the handoffs nobody redeemed before they expired.
//
// Example:
//
//	cmd := NewSweepHandoffsCommand()
//	removed, err := handler.Handle(ctx, cmd)
type SweepHandoffsCommand struct {
	guard guard.ConstructorGuard
}

var ErrSweepHandoffsCommandIsNotConstructed = errors.New(
	"SweepHandoffsCommand must be created via NewSweepHandoffsCommand constructor",
)

func NewSweepHandoffsCommand() SweepHandoffsCommand {
	return SweepHandoffsCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepHandoffsCommand) Validate() error {
	return c.guard.Validate(ErrSweepHandoffsCommandIsNotConstructed)
}
