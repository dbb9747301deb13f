package commands_test

import (
	"testing"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmitHandler(t *testing.T, store *MockHandoffStore) commands.SubmitDraftCommandHandler {
	t.Helper()
	quoter := &MockShippingQuoter{}
	quoter.On("Quote", mock.Anything, 5.5).Return(newEstimate(t), nil)
	estimate := commands.NewEstimateShippingCommandHandler(quoter, 0)
	return commands.NewSubmitDraftCommandHandler(store, estimate, discardLogger())
}

func TestSubmitDraftCommandHandler_Handle(t *testing.T) {
	t.Run("should store a review handoff for a new order", func(t *testing.T) {
		store := &MockHandoffStore{}
		token := kernel.NewUUID()
		store.On("Put", mock.Anything, mock.MatchedBy(func(h order.Handoff) bool {
			review, ok := h.(order.ReviewHandoff)
			return ok &&
				review.Draft().CustomerName() == "John Doe" &&
				review.ShippingCost().String() == "41.00 EGP"
		})).Return(token, nil)

		cmd, err := commands.NewSubmitDraftCommand(draftValues(), nil)
		require.NoError(t, err)

		got, err := newSubmitHandler(t, store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, token.IsEqual(got))
		store.AssertExpectations(t)
	})

	t.Run("should return field messages and store nothing for an invalid form", func(t *testing.T) {
		store := &MockHandoffStore{}
		cmd, err := commands.NewSubmitDraftCommand(draftValues().With("customerName", "John 2"), nil)
		require.NoError(t, err)

		_, err = newSubmitHandler(t, store).Handle(t.Context(), cmd)

		var invalid *validation.InvalidFormError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Customer Name numbers are not allowed.", invalid.Fields["customerName"])
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("should keep the order id when resuming an edited draft", func(t *testing.T) {
		store := &MockHandoffStore{}
		review := newReview(t)
		edited, err := review.Edit()
		require.NoError(t, err)

		resume := kernel.NewUUID()
		store.On("Take", mock.Anything, resume, order.Drafting).Return(edited, nil)
		store.On("Put", mock.Anything, mock.MatchedBy(func(h order.Handoff) bool {
			return h.OrderID().IsEqual(review.OrderID())
		})).Return(kernel.NewUUID(), nil)

		cmd, err := commands.NewSubmitDraftCommand(draftValues().With("city", "Giza"), &resume)
		require.NoError(t, err)

		_, err = newSubmitHandler(t, store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("should start a new order when the resume token is gone", func(t *testing.T) {
		store := &MockHandoffStore{}
		resume := kernel.NewUUID()
		store.On("Take", mock.Anything, resume, mock.Anything).Return(nil, errs.NewObjectNotFoundError("handoff", resume.String()))
		store.On("Put", mock.Anything, mock.AnythingOfType("order.ReviewHandoff")).Return(kernel.NewUUID(), nil)

		cmd, err := commands.NewSubmitDraftCommand(draftValues(), &resume)
		require.NoError(t, err)

		_, err = newSubmitHandler(t, store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("should not be affected by changes to the submitted values", func(t *testing.T) {
		values := draftValues()
		cmd, err := commands.NewSubmitDraftCommand(values, nil)
		require.NoError(t, err)

		values["customerName"] = "Jane Roe"

		assert.Equal(t, "John Doe", cmd.Values().Get("customerName"))
	})
}
