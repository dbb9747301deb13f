package order_test

import (
	"math"
	"testing"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost_String(t *testing.T) {
	assert.Equal(t, "41.00 EGP", order.Cost(41).String())
	assert.Equal(t, "32.25 EGP", order.Cost(32.25).String())
	assert.Equal(t, "41.00", order.Cost(41).Amount())
}

func TestCost_Validate(t *testing.T) {
	assert.NoError(t, order.Cost(0).Validate())
	assert.ErrorIs(t, order.Cost(-1).Validate(), errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, order.Cost(math.NaN()).Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.Cost(math.Inf(1)).Validate(), errs.ErrValueIsInvalid)
}

func TestNewEstimate(t *testing.T) {
	t.Run("should build a valid estimate", func(t *testing.T) {
		e, err := order.NewEstimate(5.5, 30, 41)

		require.NoError(t, err)
		assert.NoError(t, e.Validate())
		assert.Equal(t, order.Cost(41), e.Cost())
		assert.InDelta(t, 30, e.DistanceKm(), 1e-9)
	})

	t.Run("should join every invalid input", func(t *testing.T) {
		_, err := order.NewEstimate(math.NaN(), -1, order.Cost(math.Inf(-1)))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "weightKg")
		assert.Contains(t, err.Error(), "distanceKm")
	})

	t.Run("should flag zero value as not constructed", func(t *testing.T) {
		var e order.Estimate

		assert.ErrorIs(t, e.Validate(), order.ErrEstimateIsNotConstructed)
	})
}
