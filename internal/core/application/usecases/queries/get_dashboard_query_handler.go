package queries

import (
	"context"

	"shippix/internal/core/domain/model/dashboard"
	"shippix/internal/core/domain/model/shipment"
	"shippix/internal/core/ports"
)

// GetDashboardQueryHandler assembles the dashboard from its static content and
// records the order passed in the query on top of it.
type GetDashboardQueryHandler struct {
	content ports.ContentRepository
}

func NewGetDashboardQueryHandler(content ports.ContentRepository) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{content: content}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (dashboard.Board, error) {
	if err := query.Validate(); err != nil {
		return dashboard.Board{}, err
	}

	page, err := h.content.Dashboard(ctx)
	if err != nil {
		return dashboard.Board{}, err
	}

	board := dashboard.Board{
		Stats:           make([]dashboard.Stat, 0, len(page.Stats)),
		ActiveShipments: make([]shipment.View, 0, len(page.Shipments)),
		Performance:     make([]dashboard.Metric, 0, len(page.Performance)),
	}
	for _, s := range page.Stats {
		board.Stats = append(board.Stats, dashboard.Stat{Key: s.Key, Title: s.Title, Value: s.Value})
	}
	for _, row := range page.Shipments {
		view, err := shipment.NewView(row.ID, row.Route, row.Status, row.TimeRemaining, row.Level)
		if err != nil {
			return dashboard.Board{}, err
		}
		board.ActiveShipments = append(board.ActiveShipments, view)
	}
	for _, p := range page.Performance {
		board.Performance = append(board.Performance, dashboard.Metric{Label: p.Label, Value: p.Value})
	}

	if completed := query.Completed(); completed != nil {
		return board.Record(*completed)
	}
	return board, nil
}
