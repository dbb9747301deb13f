package commands

import (
	"errors"
	"fmt"
	"math"

	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var ErrEstimateShippingCommandIsNotConstructed = errors.New(
	"EstimateShippingCommand must be created via NewEstimateShippingCommand constructor",
)

// EstimateShippingCommand asks for the shipping fee of a package.
//
// Example:
//
//	cmd, err := NewEstimateShippingCommand(5.5)
//	estimate, err := handler.Handle(ctx, cmd)
//	fmt.Println(estimate.Cost()) // 41.00 EGP
type EstimateShippingCommand struct { //nolint:recvcheck //using for validation
	weightKg float64

	guard guard.ConstructorGuard
}

// NewEstimateShippingCommand rejects non-finite and negative weights.
func NewEstimateShippingCommand(weightKg float64) (EstimateShippingCommand, error) {
	cmd := EstimateShippingCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setWeightKg(weightKg); err != nil {
		return EstimateShippingCommand{}, err
	}

	return cmd, nil
}

func (c EstimateShippingCommand) Validate() error {
	return c.guard.Validate(ErrEstimateShippingCommandIsNotConstructed)
}

func (c EstimateShippingCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *EstimateShippingCommand) setWeightKg(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not a finite weight", weightKg))
	}
	if weightKg < 0 {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, math.MaxFloat64)
	}

	c.weightKg = weightKg
	return nil
}
