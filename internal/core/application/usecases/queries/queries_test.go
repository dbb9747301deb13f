package queries_test

import (
	"context"
	"testing"
	"time"

	"shippix/internal/core/application/usecases/queries"
	"shippix/internal/core/domain/model/content"
	"shippix/internal/core/domain/model/dashboard"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/shipment"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func newCompletedOrder(t *testing.T) order.CompletedOrder {
	t.Helper()
	draft, err := order.NewDraft(validation.Values{
		"customerName":     "John Doe",
		"emailAddress":     "john@example.com",
		"phoneNumber":      "01234567890",
		"streetAddress":    "12 Tahrir St.",
		"city":             "Cairo",
		"itemsDescription": "Two books",
		"packageValue":     "250",
		"totalWeight":      "5.5",
	})
	require.NoError(t, err)
	estimate, err := order.NewEstimate(5.5, 30, 41)
	require.NoError(t, err)
	review, err := order.NewReviewHandoff(draft, estimate)
	require.NoError(t, err)
	payment, err := review.Approve()
	require.NoError(t, err)
	completed, err := payment.Pay(order.Visa, time.Now())
	require.NoError(t, err)
	return completed
}

func dashboardContent() content.Dashboard {
	return content.Dashboard{
		Stats: []content.DashboardStat{
			{Key: dashboard.StatTotalCompleted, Title: "Total Completed Orders", Value: 123},
			{Key: dashboard.StatCompletedToday, Title: "Completed Today", Value: 8},
			{Key: dashboard.StatActive, Title: "Active Shipments", Value: 3},
			{Key: dashboard.StatPendingPickup, Title: "Pending Pickup", Value: 2},
		},
		Shipments: []content.ShipmentRow{
			{ID: "ID1", Route: "Cairo → Giza", Status: "In Transit", TimeRemaining: "2h", Level: 2},
		},
		Performance: []content.QuickStat{{Label: "On-time delivery", Value: "96%"}},
	}
}

func TestGetDashboardQueryHandler_Handle(t *testing.T) {
	t.Run("should build the board from content", func(t *testing.T) {
		repo := &MockContentRepository{}
		repo.On("Dashboard", mock.Anything).Return(dashboardContent(), nil)

		query, err := queries.NewGetDashboardQuery(nil)
		require.NoError(t, err)

		board, err := queries.NewGetDashboardQueryHandler(repo).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, board.ActiveShipments, 1)
		assert.Equal(t, 66, board.ActiveShipments[0].Level().Percent())
		assert.Empty(t, board.RecentOrders)
		total, _ := board.Stat(dashboard.StatTotalCompleted)
		assert.Equal(t, 123, total.Value)
	})

	t.Run("should record the paid order", func(t *testing.T) {
		repo := &MockContentRepository{}
		repo.On("Dashboard", mock.Anything).Return(dashboardContent(), nil)
		completed := newCompletedOrder(t)

		query, err := queries.NewGetDashboardQuery(&completed)
		require.NoError(t, err)

		board, err := queries.NewGetDashboardQueryHandler(repo).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, board.RecentOrders, 1)
		assert.Equal(t, "John Doe", board.RecentOrders[0].CustomerName)
		total, _ := board.Stat(dashboard.StatTotalCompleted)
		today, _ := board.Stat(dashboard.StatCompletedToday)
		assert.Equal(t, 124, total.Value)
		assert.Equal(t, 9, today.Value)
	})

	t.Run("should reject a shipment with an out of range level", func(t *testing.T) {
		page := dashboardContent()
		page.Shipments[0].Level = 4
		repo := &MockContentRepository{}
		repo.On("Dashboard", mock.Anything).Return(page, nil)

		query, err := queries.NewGetDashboardQuery(nil)
		require.NoError(t, err)

		_, err = queries.NewGetDashboardQueryHandler(repo).Handle(t.Context(), query)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a zero-value completed order", func(t *testing.T) {
		_, err := queries.NewGetDashboardQuery(&order.CompletedOrder{})

		assert.Error(t, err)
	})
}

func TestGetShipmentDetailsQueryHandler_Handle(t *testing.T) {
	t.Run("should position the delivery track", func(t *testing.T) {
		repo := &MockContentRepository{}
		repo.On("ShipmentSample", mock.Anything, "ID1").Return(content.ShipmentSample{
			CurrentStep:   shipment.StepInTransit,
			ETA:           "2 Days : 30 hrs : 44 min",
			DriverNote:    "Your driver is 8 KM away from you",
			PickupAddress: "123 Nasr, Cairo, Egypt",
		}, nil)

		query, err := queries.NewGetShipmentDetailsQuery(" ID1 ")
		require.NoError(t, err)

		details, err := queries.NewGetShipmentDetailsQueryHandler(repo).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "ID1", details.ID)
		assert.Equal(t, shipment.StepInTransit, details.Track.Current())
		assert.Equal(t, "2 Days : 30 hrs : 44 min", details.ETA)
		assert.True(t, details.CanReschedule())
	})

	t.Run("should pass not found through", func(t *testing.T) {
		repo := &MockContentRepository{}
		repo.On("ShipmentSample", mock.Anything, "ID9").
			Return(content.ShipmentSample{}, errs.NewObjectNotFoundError("shipmentID", "ID9"))

		query, err := queries.NewGetShipmentDetailsQuery("ID9")
		require.NoError(t, err)

		_, err = queries.NewGetShipmentDetailsQueryHandler(repo).Handle(t.Context(), query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should require an id", func(t *testing.T) {
		_, err := queries.NewGetShipmentDetailsQuery("  ")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetOrderStatusQueryHandler_Handle(t *testing.T) {
	completed := newCompletedOrder(t)
	query, err := queries.NewGetOrderStatusQuery(completed)
	require.NoError(t, err)

	status, err := queries.NewGetOrderStatusQueryHandler().Handle(t.Context(), query)

	require.NoError(t, err)
	id := completed.OrderID()
	assert.Equal(t, "ORD-"+id.ShortCode(), status.OrderNumber)
	assert.Equal(t, shipment.StepAwaitingApproval, status.Track.Current())
	steps := status.Track.Steps()
	assert.Equal(t, shipment.Complete, steps[0].State)
	assert.Equal(t, shipment.Current, steps[1].State)
	assert.Equal(t, shipment.Pending, steps[2].State)
}

func TestGetPageContentQueryHandler(t *testing.T) {
	repo := &MockContentRepository{}
	repo.On("HelpCenter", mock.Anything).Return(content.HelpCenter{Topics: []string{"Shipping"}}, nil)
	handler := queries.NewGetPageContentQueryHandler(repo)

	t.Run("should read the help center", func(t *testing.T) {
		help, err := handler.HelpCenter(t.Context(), queries.NewGetPageContentQuery())

		require.NoError(t, err)
		assert.Equal(t, []string{"Shipping"}, help.Topics)
	})

	t.Run("should reject a zero-value query", func(t *testing.T) {
		_, err := handler.Landing(t.Context(), queries.GetPageContentQuery{})

		assert.ErrorIs(t, err, queries.ErrGetPageContentQueryIsNotConstructed)
		repo.AssertNotCalled(t, "Landing", mock.Anything)
	})
}
