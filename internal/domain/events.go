package domain

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the payload published to the orders_events exchange on every
// lifecycle transition. Subscribers (kitchen display, staff notifier) treat it
// as a hint to refresh; the store stays the source of truth.
type OrderEvent struct {
	Event      string      `json:"event"`
	OrderID    string      `json:"order_id"`
	Table      string      `json:"table"`
	Status     OrderStatus `json:"status"`
	Total      float64     `json:"total,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
