package cart

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// DegradedNotice must be shown to the customer whenever the order only
// exists locally.
const DegradedNotice = "saved locally, not confirmed by kitchen"

// OrderPlacer is the seam to the lifecycle engine; in process it is the order
// service, remotely it is an HTTP client against the dispatcher.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error)
}

type PlacedOrder struct {
	OrderID          string `json:"order_id"`
	ConfirmationCode string `json:"code"`
	Table            string `json:"table"`
	Totals           Totals `json:"totals"`
	// Degraded marks an order the backend never confirmed; the checkout
	// completed optimistically and Notice carries the warning to surface.
	Degraded bool   `json:"degraded"`
	Notice   string `json:"notice,omitempty"`
}

// Checkout submits the cart as an order for the given table. A total backend
// failure does not abort the flow: a locally synthesized record is returned
// instead, explicitly flagged as degraded.
func Checkout(ctx context.Context, placer OrderPlacer, table string, c Cart, notes string) (PlacedOrder, error) {
	if c.Empty() {
		return PlacedOrder{}, ErrEmptyCart
	}
	totals := c.Totals()

	req := domain.CreateOrderRequest{
		Table:            table,
		LineItemsSummary: c.Summary(),
		Total:            fmt.Sprintf("%.2f", totals.Total),
		Notes:            notes,
	}

	resp, err := placer.CreateOrder(ctx, req)
	if err != nil {
		lg := logger.New("checkout")
		lg.Error("order_submit_failed", err, map[string]any{"table": table})
		return PlacedOrder{
			OrderID:          localOrderID(),
			ConfirmationCode: localConfirmationCode(),
			Table:            table,
			Totals:           totals,
			Degraded:         true,
			Notice:           DegradedNotice,
		}, nil
	}

	return PlacedOrder{
		OrderID:          resp.OrderID,
		ConfirmationCode: resp.ConfirmationCode,
		Table:            resp.Table,
		Totals:           totals,
	}, nil
}

// localOrderID fabricates an id from the clock, distinguishable from the
// backend's uuid-based ones only by its digits.
func localOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "ORD-" + ts[len(ts)-8:]
}

func localConfirmationCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
