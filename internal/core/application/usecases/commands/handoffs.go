package commands

import (
	"context"
	"fmt"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
	"shippix/internal/pkg/errs"
)

// takeAs redeems token for the stage of T. A handoff of another stage is
// reported as not found, the same way a missing one is, since a page can only
// act on its own stage.
func takeAs[T order.Handoff](ctx context.Context, store ports.HandoffStore, token kernel.UUID) (T, error) {
	var zero T

	handoff, err := store.Take(ctx, token, zero.Stage())
	if err != nil {
		return zero, err
	}

	typed, ok := handoff.(T)
	if !ok {
		return zero, errs.NewObjectNotFoundErrorWithCause(
			"handoff", token.String(),
			fmt.Errorf("handoff is at stage %s, expected %s", handoff.Stage(), zero.Stage()),
		)
	}
	return typed, nil
}
