package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/errs"
)

// Rates are the constants of the shipping fee formula:
//
//	cost = BaseRate + weight*WeightRate + DistanceKm*DistanceRate
type Rates struct {
	BaseRate     float64
	WeightRate   float64
	DistanceKm   float64
	DistanceRate float64
}

// DefaultRates quotes every order over a fixed 30 km at 0.5 EGP/km, on top of a
// 15 EGP base fee and 2 EGP/kg.
func DefaultRates() Rates {
	return Rates{
		BaseRate:     15,
		WeightRate:   2,
		DistanceKm:   30,
		DistanceRate: 0.5,
	}
}

// ShippingEstimator is a domain service computing the shipping fee of a draft.
//
// Estimate is pure. Quote wraps it in a request that takes Latency to answer and
// can be cancelled through its context, which is the contract a remote pricing
// backend will have to honour.
//
// Example usage:
//
//	estimator := services.NewShippingEstimator(services.DefaultRates(), 1500*time.Millisecond)
//
//	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
//	defer cancel()
//	estimate, err := estimator.Quote(ctx, draft.WeightKg())
//	if errors.Is(err, context.DeadlineExceeded) {
//	    // the quote took too long
//	}
//	fmt.Println(estimate.Cost()) // 41.00 EGP for 5.5 kg
type ShippingEstimator struct {
	rates   Rates
	latency time.Duration
}

// NewShippingEstimator creates an estimator. A zero latency answers immediately.
func NewShippingEstimator(rates Rates, latency time.Duration) ShippingEstimator {
	if latency < 0 {
		latency = 0
	}
	return ShippingEstimator{rates: rates, latency: latency}
}

// Rates returns the formula constants of the estimator.
func (s ShippingEstimator) Rates() Rates {
	return s.rates
}

// Estimate computes the fee for a package of weightKg. NaN, infinite and
// negative weights are rejected.
func (s ShippingEstimator) Estimate(weightKg float64) (order.Estimate, error) {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return order.Estimate{}, errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%v is not a finite weight", weightKg))
	}
	if weightKg < 0 {
		return order.Estimate{}, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, math.MaxFloat64)
	}

	r := s.rates
	cost := r.BaseRate + weightKg*r.WeightRate + r.DistanceKm*r.DistanceRate

	return order.NewEstimate(weightKg, r.DistanceKm, order.Cost(cost))
}

// Quote waits for the estimator latency and then estimates. It returns
// ctx.Err() if the context ends first.
func (s ShippingEstimator) Quote(ctx context.Context, weightKg float64) (order.Estimate, error) {
	if err := ctx.Err(); err != nil {
		return order.Estimate{}, err
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return order.Estimate{}, ctx.Err()
		case <-timer.C:
		}
	}

	return s.Estimate(weightKg)
}
