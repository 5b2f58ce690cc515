package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventOrderCreated   EventType = "order.created"
	EventOrderStarted   EventType = "order.started"
	EventOrderCompleted EventType = "order.completed"
	EventOrderCancelled EventType = "order.cancelled"
)

// OrderEvent уходит во внешние системы (чеки, уведомления) после коммита
type OrderEvent struct {
	Type           EventType
	OrderID        string
	CustomerID     string
	Status         Status
	PreviousStatus Status
	Total          decimal.Decimal
	Version        int
	OccurredAt     time.Time
}

func NewOrderEvent(t EventType, o Order, previous Status) OrderEvent {
	return OrderEvent{
		Type:           t,
		OrderID:        o.ID,
		CustomerID:     o.CustomerID,
		Status:         o.Status,
		PreviousStatus: previous,
		Total:          o.Total,
		Version:        o.Version,
		OccurredAt:     o.UpdatedAt,
	}
}
