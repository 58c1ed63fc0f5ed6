package dispatcher

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/domain"
	"restaurant-deluxe/internal/orders/repository"
	"restaurant-deluxe/internal/orders/service"
)

var availableActions = []string{
	"getActiveOrders",
	"getAllOrders",
	"getTablesStatus",
	"getProducts",
	"createOrder",
	"updateOrderStatus",
	"initialize",
	"test",
}

// Dispatcher maps a named action plus a flat payload onto one lifecycle or
// query operation and always answers with the {success, ...} envelope.
// Failures never escape as transport errors.
type Dispatcher struct {
	svc service.OrderServiceInterface
	lg  *logger.Logger
}

func New(svc service.OrderServiceInterface) *Dispatcher {
	return &Dispatcher{svc: svc, lg: logger.New("dispatcher")}
}

func (d *Dispatcher) Handle(w http.ResponseWriter, r *http.Request) {
	params := parseParams(r)
	action := params["action"]
	if action == "" {
		action = "test"
	}
	d.lg.Debug("request_received", map[string]any{"action": action})

	var resp map[string]any
	switch action {
	case "createOrder":
		resp = d.createOrder(r, params)
	case "updateOrderStatus":
		resp = d.updateOrderStatus(r, params)
	case "getActiveOrders":
		resp = d.getActiveOrders(r)
	case "getAllOrders":
		resp = d.getAllOrders(r, params)
	case "getTablesStatus":
		resp = d.getTablesStatus(r)
	case "getProducts":
		resp = d.getProducts(r)
	case "initialize":
		resp = d.initialize(r)
	case "test":
		resp = map[string]any{
			"success":          true,
			"message":          "restaurant API up",
			"timestamp":        time.Now().UTC().Format(time.RFC3339),
			"availableActions": availableActions,
		}
	default:
		resp = map[string]any{
			"success":          false,
			"error":            "unknown action: " + action,
			"availableActions": availableActions,
		}
	}

	writeJSON(w, resp)
}

func (d *Dispatcher) createOrder(r *http.Request, params map[string]string) map[string]any {
	req := domain.CreateOrderRequest{
		Table:            params["table"],
		LineItemsSummary: params["products"],
		Total:            params["total"],
		Notes:            params["notes"],
	}
	created, err := d.svc.CreateOrder(r.Context(), req)
	if err != nil {
		return failure(err)
	}
	return map[string]any{
		"success": true,
		"message": "order created",
		"orderId": created.OrderID,
		"code":    created.ConfirmationCode,
		"table":   created.Table,
		"total":   created.Total,
	}
}

func (d *Dispatcher) updateOrderStatus(r *http.Request, params map[string]string) map[string]any {
	msg, err := d.svc.AdvanceStatus(r.Context(), params["orderId"], params["status"])
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return map[string]any{"success": false, "error": "order not found"}
		}
		return failure(err)
	}
	return map[string]any{"success": true, "message": msg}
}

func (d *Dispatcher) getActiveOrders(r *http.Request) map[string]any {
	orders, err := d.svc.ActiveOrders(r.Context())
	if err != nil {
		return failure(err)
	}
	return map[string]any{
		"success":   true,
		"orders":    nonNilOrders(orders),
		"count":     len(orders),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}

func (d *Dispatcher) getAllOrders(r *http.Request, params map[string]string) map[string]any {
	orders, err := d.svc.AllOrders(r.Context(), params["date"])
	if err != nil {
		return failure(err)
	}
	return map[string]any{"success": true, "orders": nonNilOrders(orders), "count": len(orders)}
}

func (d *Dispatcher) getTablesStatus(r *http.Request) map[string]any {
	tables, err := d.svc.TablesStatus(r.Context())
	if err != nil {
		return failure(err)
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	return map[string]any{"success": true, "tables": tables, "count": len(tables)}
}

func (d *Dispatcher) getProducts(r *http.Request) map[string]any {
	products, err := d.svc.Products(r.Context())
	if err != nil {
		return failure(err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return map[string]any{"success": true, "products": products, "count": len(products)}
}

func (d *Dispatcher) initialize(r *http.Request) map[string]any {
	if err := d.svc.Initialize(r.Context()); err != nil {
		return failure(err)
	}
	return map[string]any{"success": true, "message": "system initialized"}
}

func failure(err error) map[string]any {
	return map[string]any{"success": false, "error": err.Error()}
}

func nonNilOrders(orders []domain.Order) []domain.Order {
	if orders == nil {
		return []domain.Order{}
	}
	return orders
}

// writeJSON always answers 200; success or failure lives in the envelope.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
