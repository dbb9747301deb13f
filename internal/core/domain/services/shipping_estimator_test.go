package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"shippix/internal/core/domain/services"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestShippingEstimator_Estimate(t *testing.T) {
	estimator := services.NewShippingEstimator(services.DefaultRates(), 0)

	tests := []struct {
		name     string
		weight   float64
		expected float64
		display  string
	}{
		{"should price 5.5 kg at 41", 5.5, 41.0, "41.00 EGP"},
		{"should price an empty package at the fixed part", 0, 30.0, "30.00 EGP"},
		{"should price fractional weights", 0.125, 30.25, "30.25 EGP"},
		{"should price heavy packages linearly", 100, 230.0, "230.00 EGP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate, err := estimator.Estimate(tt.weight)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, float64(estimate.Cost()))
			assert.Equal(t, tt.display, estimate.Cost().String())
			assert.Equal(t, 30.0, estimate.DistanceKm())
		})
	}

	t.Run("should equal 15 + 2*w + 15 exactly for 5.5", func(t *testing.T) {
		estimate, err := estimator.Estimate(5.5)

		require.NoError(t, err)
		assert.Equal(t, 15+2*5.5+15, float64(estimate.Cost()))
	})

	t.Run("should reject non-finite weights", func(t *testing.T) {
		for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := estimator.Estimate(w)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative weights", func(t *testing.T) {
		_, err := estimator.Estimate(-1)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should use custom rates", func(t *testing.T) {
		custom := services.NewShippingEstimator(services.Rates{BaseRate: 10, WeightRate: 1, DistanceKm: 10, DistanceRate: 1}, 0)

		estimate, err := custom.Estimate(5)

		require.NoError(t, err)
		assert.Equal(t, 25.0, float64(estimate.Cost()))
		assert.Equal(t, 10.0, custom.Rates().DistanceKm)
	})
}

func TestShippingEstimator_Quote(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("should answer after the latency", func(t *testing.T) {
		estimator := services.NewShippingEstimator(services.DefaultRates(), 20*time.Millisecond)
		start := time.Now()

		estimate, err := estimator.Quote(t.Context(), 5.5)

		require.NoError(t, err)
		assert.Equal(t, "41.00 EGP", estimate.Cost().String())
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("should stop waiting when the context is cancelled", func(t *testing.T) {
		estimator := services.NewShippingEstimator(services.DefaultRates(), time.Hour)
		ctx, cancel := context.WithCancel(t.Context())
		time.AfterFunc(10*time.Millisecond, cancel)

		_, err := estimator.Quote(ctx, 5.5)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should honour deadlines", func(t *testing.T) {
		estimator := services.NewShippingEstimator(services.DefaultRates(), time.Hour)
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		_, err := estimator.Quote(ctx, 5.5)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("should fail fast on a context already done", func(t *testing.T) {
		estimator := services.NewShippingEstimator(services.DefaultRates(), 0)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := estimator.Quote(ctx, 5.5)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should clamp negative latency", func(t *testing.T) {
		estimator := services.NewShippingEstimator(services.DefaultRates(), -time.Second)

		_, err := estimator.Quote(t.Context(), 5.5)

		assert.NoError(t, err)
	})
}
