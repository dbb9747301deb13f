package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shippix/internal/core/domain/model/content"
	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/validation"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHandoffStore struct{ mock.Mock }

func (m *MockHandoffStore) Put(ctx context.Context, h order.Handoff) (kernel.UUID, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockHandoffStore) Take(ctx context.Context, token kernel.UUID, stage order.Stage) (order.Handoff, error) {
	args := m.Called(ctx, token, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(order.Handoff), args.Error(1)
}

func (m *MockHandoffStore) DeleteExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockShippingQuoter struct{ mock.Mock }

func (m *MockShippingQuoter) Quote(ctx context.Context, weightKg float64) (order.Estimate, error) {
	args := m.Called(ctx, weightKg)
	return args.Get(0).(order.Estimate), args.Error(1)
}

type MockContentRepository struct{ mock.Mock }

func (m *MockContentRepository) Landing(ctx context.Context) (content.Landing, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.Landing), args.Error(1)
}

func (m *MockContentRepository) HelpCenter(ctx context.Context) (content.HelpCenter, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.HelpCenter), args.Error(1)
}

func (m *MockContentRepository) Dashboard(ctx context.Context) (content.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.Dashboard), args.Error(1)
}

func (m *MockContentRepository) AdminConsole(ctx context.Context) (content.AdminConsole, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.AdminConsole), args.Error(1)
}

func (m *MockContentRepository) ShipmentSample(ctx context.Context, id string) (content.ShipmentSample, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(content.ShipmentSample), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func draftValues() validation.Values {
	return validation.Values{
		"customerName":     "John Doe",
		"emailAddress":     "john@example.com",
		"phoneNumber":      "01234567890",
		"streetAddress":    "12 Tahrir St.",
		"city":             "Cairo",
		"notesToDriver":    "Ring twice",
		"itemsDescription": "Two books",
		"packageValue":     "250",
		"totalWeight":      "5.5",
	}
}

func newEstimate(t *testing.T) order.Estimate {
	t.Helper()
	estimate, err := order.NewEstimate(5.5, 30, 41)
	require.NoError(t, err)
	return estimate
}

func newReview(t *testing.T) order.ReviewHandoff {
	t.Helper()
	draft, err := order.NewDraft(draftValues())
	require.NoError(t, err)
	review, err := order.NewReviewHandoff(draft, newEstimate(t))
	require.NoError(t, err)
	return review
}

func newPayment(t *testing.T) order.PaymentHandoff {
	t.Helper()
	payment, err := newReview(t).Approve()
	require.NoError(t, err)
	return payment
}
