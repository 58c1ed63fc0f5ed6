package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/domain"
	"restaurant-deluxe/internal/orders/repository"
)

const publishTimeout = 5 * time.Second

type OrderService struct {
	repo repository.Store
	pub  EventPublisher // optional, nil disables notifications
	lg   *logger.Logger
}

func NewOrderService(repo repository.Store, pub EventPublisher) OrderServiceInterface {
	return &OrderService{repo: repo, pub: pub, lg: logger.New("order-service")}
}

// CreateOrder validates the request, persists the order together with the
// table occupancy update, and emits an order.created event. A malformed or
// missing total is coerced to zero rather than rejected.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error) {
	table := strings.TrimSpace(req.Table)
	if table == "" {
		return domain.CreateOrderResponse{}, ErrTableRequired
	}

	order := domain.Order{
		ID:               newOrderID(),
		Table:            table,
		LineItemsSummary: req.LineItemsSummary,
		Total:            coerceTotal(req.Total),
		Status:           domain.StatusPending,
		ConfirmationCode: newConfirmationCode(),
		CreatedAt:        time.Now().UTC(),
		Notes:            req.Notes,
	}

	if err := s.repo.InsertOrder(ctx, order); err != nil {
		return domain.CreateOrderResponse{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.lg.Info("order_created", map[string]any{
		"order_id": order.ID, "table": order.Table, "total": order.Total,
	})
	s.publish(domain.OrderEvent{
		Event:      domain.EventOrderCreated,
		OrderID:    order.ID,
		Table:      order.Table,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: order.CreatedAt,
	})

	return domain.CreateOrderResponse{
		OrderID:          order.ID,
		ConfirmationCode: order.ConfirmationCode,
		Table:            order.Table,
		Total:            order.Total,
	}, nil
}

// AdvanceStatus moves an order strictly forward through the lifecycle.
// Reaching the terminal state releases the order's table inside the same
// store transaction and drops it from the active view.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID, status string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	status = strings.TrimSpace(status)
	if orderID == "" || status == "" {
		return "", ErrOrderIDRequired
	}
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	current, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if !current.Status.CanAdvanceTo(next) {
		return "", fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, current.Status, next)
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return "", fmt.Errorf("failed to update status: %w", err)
	}

	s.lg.Info("status_updated", map[string]any{
		"order_id": orderID, "from": string(current.Status), "to": status,
	})
	s.publish(domain.OrderEvent{
		Event:      domain.EventOrderStatusChanged,
		OrderID:    orderID,
		Table:      current.Table,
		Status:     next,
		OccurredAt: time.Now().UTC(),
	})

	return fmt.Sprintf("status updated to: %s", status), nil
}

func (s *OrderService) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ActiveOrders(ctx)
}

func (s *OrderService) AllOrders(ctx context.Context, date string) ([]domain.Order, error) {
	return s.repo.AllOrders(ctx, strings.TrimSpace(date))
}

func (s *OrderService) TablesStatus(ctx context.Context) ([]domain.Table, error) {
	return s.repo.Tables(ctx)
}

func (s *OrderService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Products(ctx)
}

func (s *OrderService) Initialize(ctx context.Context) error {
	return s.repo.Init(ctx)
}

// publish is best effort: a broker failure is logged and never fails the
// operation that triggered it.
func (s *OrderService) publish(ev domain.OrderEvent) {
	if s.pub == nil {
		return
	}
	body, err := json.Marshal(ev)
	if err != nil {
		s.lg.Error("event_marshal_failed", err, map[string]any{"event": ev.Event})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.pub.Publish(ctx, ev.Event, body); err != nil {
		s.lg.Error("event_publish_failed", err, map[string]any{
			"event": ev.Event, "order_id": ev.OrderID,
		})
	}
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// newConfirmationCode returns a six digit display-only code. Collisions are
// possible and acceptable; it is a courtesy code, not an identifier.
func newConfirmationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "100000"
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}

func coerceTotal(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
