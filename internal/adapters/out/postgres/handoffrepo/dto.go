// Package handoffrepo stores workflow handoffs in PostgreSQL through GORM, so
// several instances of the service can share one order workflow.
package handoffrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/validation"

	"github.com/google/uuid"
)

// HandoffDTO is one row of the handoffs table. The stage-specific fields are
// kept in a JSON payload.
type HandoffDTO struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Stage     int       `gorm:"not null"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (HandoffDTO) TableName() string {
	return "handoffs"
}

// PayloadDTO is the JSON body of a handoff. Only the fields of its stage are set.
type PayloadDTO struct {
	OrderID uuid.UUID `json:"orderId"`

	Draft      map[string]string `json:"draft,omitempty"`
	WeightKg   float64           `json:"weightKg,omitempty"`
	DistanceKm float64           `json:"distanceKm,omitempty"`

	CustomerName     string  `json:"customerName,omitempty"`
	City             string  `json:"city,omitempty"`
	ItemsDescription string  `json:"itemsDescription,omitempty"`
	ShippingCost     float64 `json:"shippingCost,omitempty"`

	PaymentMethod string     `json:"paymentMethod,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func fromDomain(token kernel.UUID, handoff order.Handoff, expiresAt time.Time) (HandoffDTO, error) {
	payload := PayloadDTO{OrderID: handoff.OrderID().Bytes()}

	switch h := handoff.(type) {
	case order.DraftHandoff:
		payload.Draft = h.Draft().Values()
	case order.ReviewHandoff:
		payload.Draft = h.Draft().Values()
		payload.WeightKg = h.Estimate().WeightKg()
		payload.DistanceKm = h.Estimate().DistanceKm()
		payload.ShippingCost = float64(h.ShippingCost())
	case order.PaymentHandoff:
		payload.CustomerName = h.CustomerName()
		payload.City = h.City()
		payload.ItemsDescription = h.ItemsDescription()
		payload.ShippingCost = float64(h.ShippingCost())
	case order.CompletedOrder:
		completedAt := h.CompletedAt()
		payload.CustomerName = h.CustomerName()
		payload.City = h.City()
		payload.ItemsDescription = h.ItemsDescription()
		payload.ShippingCost = float64(h.ShippingCost())
		payload.PaymentMethod = h.PaymentMethod().Code()
		payload.CompletedAt = &completedAt
	default:
		return HandoffDTO{}, fmt.Errorf("unsupported handoff type %T", handoff)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return HandoffDTO{}, err
	}

	return HandoffDTO{
		Token:     token.Bytes(),
		Stage:     int(handoff.Stage()),
		Payload:   raw,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func toDomain(dto HandoffDTO) (order.Handoff, error) {
	var payload PayloadDTO
	if err := json.Unmarshal(dto.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode handoff payload: %w", err)
	}

	orderID, err := kernel.UUIDFromString(payload.OrderID.String())
	if err != nil {
		return nil, err
	}

	switch stage := order.Stage(dto.Stage); stage {
	case order.Drafting:
		draft, err := order.NewDraft(validation.Values(payload.Draft))
		if err != nil {
			return nil, err
		}
		return order.RestoreDraftHandoff(orderID, draft)

	case order.Reviewing:
		draft, err := order.NewDraft(validation.Values(payload.Draft))
		if err != nil {
			return nil, err
		}
		estimate, err := order.NewEstimate(payload.WeightKg, payload.DistanceKm, order.Cost(payload.ShippingCost))
		if err != nil {
			return nil, err
		}
		return order.RestoreReviewHandoff(orderID, draft, estimate)

	case order.AwaitingPayment:
		return order.RestorePaymentHandoff(orderID,
			payload.CustomerName, payload.City, payload.ItemsDescription, order.Cost(payload.ShippingCost))

	case order.Completed:
		method, err := order.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			return nil, err
		}
		var completedAt time.Time
		if payload.CompletedAt != nil {
			completedAt = *payload.CompletedAt
		}
		return order.RestoreCompletedOrder(orderID,
			payload.CustomerName, payload.City, payload.ItemsDescription,
			order.Cost(payload.ShippingCost), method, completedAt)

	default:
		return nil, fmt.Errorf("handoff %s has unknown stage %d", dto.Token, dto.Stage)
	}
}
