package commands_test

import (
	"testing"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiveHandoffCommandHandler_Handle(t *testing.T) {
	t.Run("should take the handoff and relay it under a fresh token", func(t *testing.T) {
		store := &MockHandoffStore{}
		review := newReview(t)
		token, relay := kernel.NewUUID(), kernel.NewUUID()

		mock.InOrder(
			store.On("Take", mock.Anything, token, order.Reviewing).Return(review, nil),
			store.On("Put", mock.Anything, review).Return(relay, nil),
		)

		cmd, err := commands.NewReceiveHandoffCommand(token, order.Reviewing)
		require.NoError(t, err)

		got, err := commands.NewReceiveHandoffCommandHandler(store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, review, got.Handoff)
		assert.True(t, relay.IsEqual(got.Token))
		store.AssertExpectations(t)
	})

	t.Run("should ask the store for the expected stage only", func(t *testing.T) {
		store := &MockHandoffStore{}
		token := kernel.NewUUID()
		store.On("Take", mock.Anything, token, order.AwaitingPayment).
			Return(nil, errs.NewObjectNotFoundError("handoff", token.String()))

		cmd, err := commands.NewReceiveHandoffCommand(token, order.AwaitingPayment)
		require.NoError(t, err)

		_, err = commands.NewReceiveHandoffCommandHandler(store).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("should report a spent token as not found", func(t *testing.T) {
		store := &MockHandoffStore{}
		token := kernel.NewUUID()
		store.On("Take", mock.Anything, token, mock.Anything).Return(nil, errs.NewObjectNotFoundError("handoff", token.String()))

		cmd, err := commands.NewReceiveHandoffCommand(token, order.Reviewing)
		require.NoError(t, err)

		_, err = commands.NewReceiveHandoffCommandHandler(store).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unknown expected stage", func(t *testing.T) {
		_, err := commands.NewReceiveHandoffCommand(kernel.NewUUID(), order.Unknown)

		assert.Error(t, err)
	})
}
