// Package client calls the action API the way the menu and panel clients do:
// one endpoint, an action name, a flat JSON payload, and the {success, ...}
// envelope back.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"restaurant-deluxe/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e envelope) err(action string) error {
	msg := e.Error
	if msg == "" {
		msg = e.Message
	}
	return fmt.Errorf("%s failed: %s", action, msg)
}

func (c *Client) do(ctx context.Context, action string, params map[string]any, out any) error {
	payload := map[string]any{"action": action}
	for k, v := range params {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateOrder satisfies cart.OrderPlacer.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error) {
	var out struct {
		envelope
		OrderID string  `json:"orderId"`
		Code    string  `json:"code"`
		Table   string  `json:"table"`
		Total   float64 `json:"total"`
	}
	err := c.do(ctx, "createOrder", map[string]any{
		"table":    req.Table,
		"products": req.LineItemsSummary,
		"total":    req.Total,
		"notes":    req.Notes,
	}, &out)
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}
	if !out.Success {
		return domain.CreateOrderResponse{}, out.err("createOrder")
	}
	return domain.CreateOrderResponse{
		OrderID:          out.OrderID,
		ConfirmationCode: out.Code,
		Table:            out.Table,
		Total:            out.Total,
	}, nil
}

func (c *Client) AdvanceStatus(ctx context.Context, orderID, status string) (string, error) {
	var out envelope
	err := c.do(ctx, "updateOrderStatus", map[string]any{
		"orderId": orderID,
		"status":  status,
	}, &out)
	if err != nil {
		return "", err
	}
	if !out.Success {
		return "", out.err("updateOrderStatus")
	}
	return out.Message, nil
}

// ActiveOrders satisfies the read side of staff.Client.
func (c *Client) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	var out struct {
		envelope
		Orders []domain.Order `json:"orders"`
	}
	if err := c.do(ctx, "getActiveOrders", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, out.err("getActiveOrders")
	}
	return out.Orders, nil
}

func (c *Client) AllOrders(ctx context.Context, date string) ([]domain.Order, error) {
	params := map[string]any{}
	if date != "" {
		params["date"] = date
	}
	var out struct {
		envelope
		Orders []domain.Order `json:"orders"`
	}
	if err := c.do(ctx, "getAllOrders", params, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, out.err("getAllOrders")
	}
	return out.Orders, nil
}

func (c *Client) TablesStatus(ctx context.Context) ([]domain.Table, error) {
	var out struct {
		envelope
		Tables []domain.Table `json:"tables"`
	}
	if err := c.do(ctx, "getTablesStatus", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, out.err("getTablesStatus")
	}
	return out.Tables, nil
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out struct {
		envelope
		Products []domain.Product `json:"products"`
	}
	if err := c.do(ctx, "getProducts", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, out.err("getProducts")
	}
	return out.Products, nil
}
