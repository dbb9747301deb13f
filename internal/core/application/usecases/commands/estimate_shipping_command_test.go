package commands_test

import (
	"context"
	"math"
	"testing"
	"time"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewEstimateShippingCommand(t *testing.T) {
	t.Run("should accept a finite weight", func(t *testing.T) {
		cmd, err := commands.NewEstimateShippingCommand(5.5)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.InDelta(t, 5.5, cmd.WeightKg(), 1e-9)
	})

	t.Run("should reject NaN and infinite weights", func(t *testing.T) {
		for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := commands.NewEstimateShippingCommand(w)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject a negative weight", func(t *testing.T) {
		_, err := commands.NewEstimateShippingCommand(-1)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.EstimateShippingCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrEstimateShippingCommandIsNotConstructed)
	})
}

func TestEstimateShippingCommandHandler_Handle(t *testing.T) {
	t.Run("should quote the weight under a deadline", func(t *testing.T) {
		quoter := &MockShippingQuoter{}
		estimate := newEstimate(t)
		quoter.On("Quote", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), 5.5).Return(estimate, nil)

		handler := commands.NewEstimateShippingCommandHandler(quoter, time.Second)
		cmd, err := commands.NewEstimateShippingCommand(5.5)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "41.00 EGP", got.Cost().String())
		quoter.AssertExpectations(t)
	})

	t.Run("should pass quoter errors through", func(t *testing.T) {
		quoter := &MockShippingQuoter{}
		quoter.On("Quote", mock.Anything, 2.0).Return(newEstimate(t), context.DeadlineExceeded)

		handler := commands.NewEstimateShippingCommandHandler(quoter, 0)
		cmd, err := commands.NewEstimateShippingCommand(2)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("should reject a zero-value command", func(t *testing.T) {
		quoter := &MockShippingQuoter{}
		handler := commands.NewEstimateShippingCommandHandler(quoter, 0)

		_, err := handler.Handle(t.Context(), commands.EstimateShippingCommand{})

		assert.ErrorIs(t, err, commands.ErrEstimateShippingCommandIsNotConstructed)
		quoter.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything)
	})
}
