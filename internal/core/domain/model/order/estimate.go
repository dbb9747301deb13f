package order

import (
	"errors"
	"fmt"
	"math"

	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

// ErrEstimateIsNotConstructed is returned when an Estimate was not created through NewEstimate.
var ErrEstimateIsNotConstructed = errors.New("Estimate must be created via NewEstimate constructor")

// Cost is a shipping fee in Egyptian pounds.
type Cost float64

// Amount formats the cost with two decimals, e.g. "41.00".
func (c Cost) Amount() string {
	return fmt.Sprintf("%.2f", float64(c))
}

// String formats the cost as shown to customers, e.g. "41.00 EGP".
func (c Cost) String() string {
	return c.Amount() + " EGP"
}

// Validate rejects negative and non-finite costs.
func (c Cost) Validate() error {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%v is not a finite amount", f))
	}
	if f < 0 {
		return errs.NewValueIsOutOfRangeError("cost", f, 0, math.MaxFloat64)
	}
	return nil
}

// Estimate is the shipping fee quoted for a draft together with the inputs it
// was computed from.
type Estimate struct {
	weightKg   float64
	distanceKm float64
	cost       Cost
	guard      guard.ConstructorGuard
}

// NewEstimate builds an Estimate. Weight and distance must be finite and not
// negative, and the cost must pass Cost.Validate.
func NewEstimate(weightKg, distanceKm float64, cost Cost) (Estimate, error) {
	if err := errors.Join(
		validateMeasure("weightKg", weightKg),
		validateMeasure("distanceKm", distanceKm),
		cost.Validate(),
	); err != nil {
		return Estimate{}, err
	}

	return Estimate{
		weightKg:   weightKg,
		distanceKm: distanceKm,
		cost:       cost,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Estimate was built by NewEstimate.
func (e Estimate) Validate() error {
	return e.guard.Validate(ErrEstimateIsNotConstructed)
}

func (e Estimate) WeightKg() float64   { return e.weightKg }
func (e Estimate) DistanceKm() float64 { return e.distanceKm }
func (e Estimate) Cost() Cost          { return e.cost }

func validateMeasure(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", v))
	}
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
	}
	return nil
}
