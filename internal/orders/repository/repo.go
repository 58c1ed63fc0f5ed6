package repository

import (
	"context"
	"errors"

	"restaurant-deluxe/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// Store is the tabular backend seen by the lifecycle engine. There is a
// single authoritative orders relation; the "active" view is a query-time
// filter on status, never a second physical copy.
type Store interface {
	Init(ctx context.Context) error
	// InsertOrder persists the order and marks its table occupied in one
	// transaction. A table missing from the pool is synthesized with
	// default capacity and location.
	InsertOrder(ctx context.Context, o domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	// UpdateOrderStatus writes the new status; when it is the terminal
	// state the referenced table is released in the same transaction.
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ActiveOrders(ctx context.Context) ([]domain.Order, error)
	// AllOrders returns the full history, optionally restricted to orders
	// created on day (YYYY-MM-DD); empty day means no filter.
	AllOrders(ctx context.Context, day string) ([]domain.Order, error)
	Tables(ctx context.Context) ([]domain.Table, error)
	Products(ctx context.Context) ([]domain.Product, error)
}
