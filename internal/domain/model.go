package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

var statusOrdinal = map[OrderStatus]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusDelivered: 3,
}

// Valid reports whether s is one of the four lifecycle states.
func (s OrderStatus) Valid() bool {
	_, ok := statusOrdinal[s]
	return ok
}

// CanAdvanceTo reports whether next strictly advances the lifecycle.
// Backward moves and repeated writes of the same status are rejected.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	cur, ok := statusOrdinal[s]
	if !ok {
		return false
	}
	n, ok := statusOrdinal[next]
	if !ok {
		return false
	}
	return n > cur
}

func (s OrderStatus) Terminal() bool { return s == StatusDelivered }

type Order struct {
	ID               string      `json:"id"`
	Table            string      `json:"table"`
	LineItemsSummary string      `json:"products"`
	Total            float64     `json:"total"`
	Status           OrderStatus `json:"status"`
	ConfirmationCode string      `json:"code"`
	CreatedAt        time.Time   `json:"created_at"`
	Notes            string      `json:"notes,omitempty"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type Table struct {
	Number         string      `json:"number"`
	Status         TableStatus `json:"status"`
	CurrentOrderID string      `json:"current_order_id,omitempty"`
	Capacity       int         `json:"capacity"`
	Location       string      `json:"location"`
	LastUpdated    time.Time   `json:"last_updated"`
}

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	Image       string  `json:"image,omitempty"`
}
