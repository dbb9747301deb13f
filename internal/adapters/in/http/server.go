package http

import (
	"log/slog"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/application/usecases/queries"
)

// Handlers groups the use cases the HTTP adapter drives.
type Handlers struct {
	// Command handlers
	EstimateShipping   commands.EstimateShippingCommandHandler
	SubmitDraft        commands.SubmitDraftCommandHandler
	ReceiveHandoff     commands.ReceiveHandoffCommandHandler
	ApproveOrder       commands.ApproveOrderCommandHandler
	EditOrder          commands.EditOrderCommandHandler
	SaveDraft          commands.SaveDraftCommandHandler
	PayOrder           commands.PayOrderCommandHandler
	Authenticate       commands.AuthenticateCommandHandler
	RescheduleShipment commands.RescheduleShipmentCommandHandler
	DecideOrderReview  commands.DecideOrderReviewCommandHandler

	// Query handlers
	GetDashboard       queries.GetDashboardQueryHandler
	GetShipmentDetails queries.GetShipmentDetailsQueryHandler
	GetOrderStatus     queries.GetOrderStatusQueryHandler
	GetPageContent     queries.GetPageContentQueryHandler
}

// Server serves the HTML pages and the JSON API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}
