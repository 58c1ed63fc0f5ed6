package service

import (
	"context"
	"errors"

	"restaurant-deluxe/internal/domain"
)

var (
	ErrTableRequired      = errors.New("table is required")
	ErrOrderIDRequired    = errors.New("orderId and status are required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrBackwardTransition = errors.New("status can only move forward")
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error)
	AdvanceStatus(ctx context.Context, orderID, status string) (string, error)
	ActiveOrders(ctx context.Context) ([]domain.Order, error)
	AllOrders(ctx context.Context, date string) ([]domain.Order, error)
	TablesStatus(ctx context.Context) ([]domain.Table, error)
	Products(ctx context.Context) ([]domain.Product, error)
	Initialize(ctx context.Context) error
}

// EventPublisher pushes lifecycle events to the broker. Implementations must
// be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
