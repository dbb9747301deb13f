// Package dashboard builds the business owner's dashboard: summary counters,
// active shipments, weekly performance and the orders paid in this session.
package dashboard

import (
	"errors"
	"time"

	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/shipment"
)

// Keys of the summary counters.
const (
	StatTotalCompleted = "total-completed"
	StatCompletedToday = "completed-today"
	StatActive         = "active"
	StatPendingPickup  = "pending-pickup"
)

// Stat is one summary counter card.
type Stat struct {
	Key   string
	Title string
	Value int
}

// Metric is one line of the weekly performance card.
type Metric struct {
	Label string
	Value string
}

// RecentOrder is a paid order listed on the dashboard.
type RecentOrder struct {
	OrderID          string
	OrderNumber      string
	CustomerName     string
	City             string
	ItemsDescription string
	ShippingCost     order.Cost
	PaymentMethod    order.PaymentMethod
	CompletedAt      time.Time
}

// Board is the rendered state of the dashboard. It is rebuilt for every
// request; recording an order never outlives the response it is rendered in.
type Board struct {
	Stats           []Stat
	ActiveShipments []shipment.View
	Performance     []Metric
	RecentOrders    []RecentOrder
}

// Record returns a copy of the board with the completed order prepended to the
// recent orders and the completed counters incremented.
func (b Board) Record(completed order.CompletedOrder) (Board, error) {
	if err := completed.Validate(); err != nil {
		return Board{}, err
	}

	out := Board{
		Stats:           make([]Stat, len(b.Stats)),
		ActiveShipments: append([]shipment.View(nil), b.ActiveShipments...),
		Performance:     append([]Metric(nil), b.Performance...),
		RecentOrders:    make([]RecentOrder, 0, len(b.RecentOrders)+1),
	}

	found := 0
	for i, s := range b.Stats {
		if s.Key == StatTotalCompleted || s.Key == StatCompletedToday {
			s.Value++
			found++
		}
		out.Stats[i] = s
	}
	if found != 2 {
		return Board{}, errors.New("dashboard is missing its completed counters")
	}

	id := completed.OrderID()
	out.RecentOrders = append(out.RecentOrders, RecentOrder{
		OrderID:          id.String(),
		OrderNumber:      "ORD-" + id.ShortCode(),
		CustomerName:     completed.CustomerName(),
		City:             completed.City(),
		ItemsDescription: completed.ItemsDescription(),
		ShippingCost:     completed.ShippingCost(),
		PaymentMethod:    completed.PaymentMethod(),
		CompletedAt:      completed.CompletedAt(),
	})
	out.RecentOrders = append(out.RecentOrders, b.RecentOrders...)

	return out, nil
}

// Stat returns the counter with the given key.
func (b Board) Stat(key string) (Stat, bool) {
	for _, s := range b.Stats {
		if s.Key == key {
			return s, true
		}
	}
	return Stat{}, false
}
