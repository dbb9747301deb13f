package commands_test

import (
	"testing"
	"time"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should store a payment handoff for the same order", func(t *testing.T) {
		store := &MockHandoffStore{}
		review := newReview(t)
		token, next := kernel.NewUUID(), kernel.NewUUID()

		mock.InOrder(
			store.On("Take", mock.Anything, token, order.Reviewing).Return(review, nil),
			store.On("Put", mock.Anything, mock.MatchedBy(func(h order.Handoff) bool {
				payment, ok := h.(order.PaymentHandoff)
				return ok &&
					payment.OrderID().IsEqual(review.OrderID()) &&
					payment.ShippingCost().String() == "41.00 EGP"
			})).Return(next, nil),
		)

		cmd, err := commands.NewApproveOrderCommand(token)
		require.NoError(t, err)

		got, err := commands.NewApproveOrderCommandHandler(store, discardLogger()).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, next.IsEqual(got))
		store.AssertExpectations(t)
	})

	t.Run("should not approve a payment handoff", func(t *testing.T) {
		store := &MockHandoffStore{}
		token := kernel.NewUUID()
		store.On("Take", mock.Anything, token, order.AwaitingPayment).Return(newPayment(t), nil)

		cmd, err := commands.NewApproveOrderCommand(token)
		require.NoError(t, err)

		_, err = commands.NewApproveOrderCommandHandler(store, discardLogger()).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("should reject a nil token", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(kernel.UUID{})

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestEditOrderCommandHandler_Handle(t *testing.T) {
	store := &MockHandoffStore{}
	review := newReview(t)
	token, next := kernel.NewUUID(), kernel.NewUUID()

	store.On("Take", mock.Anything, token, order.Reviewing).Return(review, nil)
	store.On("Put", mock.Anything, mock.MatchedBy(func(h order.Handoff) bool {
		draft, ok := h.(order.DraftHandoff)
		return ok &&
			draft.OrderID().IsEqual(review.OrderID()) &&
			draft.Draft().Values().Get("customerName") == "John Doe"
	})).Return(next, nil)

	cmd, err := commands.NewEditOrderCommand(token)
	require.NoError(t, err)

	got, err := commands.NewEditOrderCommandHandler(store).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, next.IsEqual(got))
	store.AssertExpectations(t)
}

func TestSaveDraftCommandHandler_Handle(t *testing.T) {
	t.Run("should consume the review handoff", func(t *testing.T) {
		store := &MockHandoffStore{}
		token := kernel.NewUUID()
		store.On("Take", mock.Anything, token, order.Reviewing).Return(newReview(t), nil)

		cmd, err := commands.NewSaveDraftCommand(token)
		require.NoError(t, err)

		err = commands.NewSaveDraftCommandHandler(store, discardLogger()).Handle(t.Context(), cmd)

		require.NoError(t, err)
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		err := commands.NewSaveDraftCommandHandler(&MockHandoffStore{}, discardLogger()).
			Handle(t.Context(), commands.SaveDraftCommand{})

		assert.ErrorIs(t, err, commands.ErrSaveDraftCommandIsNotConstructed)
	})
}

func TestPayOrderCommandHandler_Handle(t *testing.T) {
	paidAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return paidAt }

	t.Run("should complete the order with the chosen method", func(t *testing.T) {
		store := &MockHandoffStore{}
		payment := newPayment(t)
		token, next := kernel.NewUUID(), kernel.NewUUID()

		store.On("Take", mock.Anything, token, order.AwaitingPayment).Return(payment, nil)
		store.On("Put", mock.Anything, mock.MatchedBy(func(h order.Handoff) bool {
			completed, ok := h.(order.CompletedOrder)
			return ok &&
				completed.OrderID().IsEqual(payment.OrderID()) &&
				completed.PaymentMethod() == order.Fawry &&
				completed.CompletedAt().Equal(paidAt)
		})).Return(next, nil)

		cmd, err := commands.NewPayOrderCommand(token, order.Fawry)
		require.NoError(t, err)

		got, err := commands.NewPayOrderCommandHandler(store, now, discardLogger()).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, next.IsEqual(got))
		store.AssertExpectations(t)
	})

	t.Run("should reject an unknown payment method", func(t *testing.T) {
		_, err := commands.NewPayOrderCommand(kernel.NewUUID(), order.UnknownPaymentMethod)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report both invalid arguments", func(t *testing.T) {
		_, err := commands.NewPayOrderCommand(kernel.UUID{}, order.UnknownPaymentMethod)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSweepHandoffsCommandHandler_Handle(t *testing.T) {
	store := &MockHandoffStore{}
	store.On("DeleteExpired", mock.Anything).Return(3, nil)

	removed, err := commands.NewSweepHandoffsCommandHandler(store, discardLogger()).
		Handle(t.Context(), commands.NewSweepHandoffsCommand())

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	store.AssertExpectations(t)
}
