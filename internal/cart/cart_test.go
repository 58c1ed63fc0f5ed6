package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-deluxe/internal/cart"
	"restaurant-deluxe/internal/domain"
)

var (
	filet    = domain.Product{ID: 1, Name: "Filet Mignon", Price: 34.99, Category: "mains", Available: true}
	cocktail = domain.Product{ID: 6, Name: "Signature Cocktail", Price: 16.00, Category: "drinks", Available: true}
)

func almostEqual(t *testing.T, want, got float64) {
	t.Helper()
	assert.Less(t, math.Abs(want-got), 1e-9, "want %v got %v", want, got)
}

func TestCartTotals(t *testing.T) {
	var c cart.Cart
	c.Add(filet, 1)
	c.Add(cocktail, 2)

	totals := c.Totals()
	almostEqual(t, 66.99, totals.Subtotal)
	almostEqual(t, 66.99*0.16, totals.Tax)
	almostEqual(t, 66.99*0.10, totals.Service)
	almostEqual(t, 66.99*1.26, totals.Total)
}

func TestCartSummaryEncoding(t *testing.T) {
	var c cart.Cart
	c.Add(filet, 1)
	c.Add(cocktail, 2)

	assert.Equal(t, "1x Filet Mignon, 2x Signature Cocktail", c.Summary())
}

func TestCartAddMergesSameProduct(t *testing.T) {
	var c cart.Cart
	c.Add(cocktail, 1)
	c.Add(cocktail, 2)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	var c cart.Cart
	c.Add(filet, 2)
	c.SetQuantity(filet.ID, 5)
	assert.Equal(t, 5, c.Items[0].Quantity)

	c.SetQuantity(filet.ID, 0)
	assert.True(t, c.Empty())

	c.Add(filet, 1)
	c.Remove(filet.ID)
	assert.True(t, c.Empty())
}

func TestCartSerializeRestore(t *testing.T) {
	var c cart.Cart
	c.Add(filet, 1)
	c.Add(cocktail, 2)

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var restored cart.Cart
	require.NoError(t, json.Unmarshal(b, &restored))
	assert.Equal(t, c, restored)
	assert.Equal(t, c.Summary(), restored.Summary())
}

type fakePlacer struct {
	req  domain.CreateOrderRequest
	resp domain.CreateOrderResponse
	err  error
}

func (f *fakePlacer) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestCheckoutSubmitsSummaryAndTotal(t *testing.T) {
	var c cart.Cart
	c.Add(filet, 1)
	c.Add(cocktail, 2)

	placer := &fakePlacer{resp: domain.CreateOrderResponse{
		OrderID:          "ORD-AAAA1111",
		ConfirmationCode: "123456",
		Table:            "01",
		Total:            84.41,
	}}

	placed, err := cart.Checkout(context.Background(), placer, "01", c, "no onion")
	require.NoError(t, err)

	assert.Equal(t, "01", placer.req.Table)
	assert.Equal(t, "1x Filet Mignon, 2x Signature Cocktail", placer.req.LineItemsSummary)
	assert.Equal(t, "84.41", placer.req.Total)
	assert.Equal(t, "no onion", placer.req.Notes)

	assert.Equal(t, "ORD-AAAA1111", placed.OrderID)
	assert.False(t, placed.Degraded)
	assert.Empty(t, placed.Notice)
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, err := cart.Checkout(context.Background(), &fakePlacer{}, "01", cart.Cart{}, "")
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestCheckoutFallsBackToLocalOrder(t *testing.T) {
	var c cart.Cart
	c.Add(cocktail, 1)

	placer := &fakePlacer{err: errors.New("backend unreachable")}
	placed, err := cart.Checkout(context.Background(), placer, "02", c, "")
	require.NoError(t, err, "degraded checkout still completes")

	assert.True(t, placed.Degraded)
	assert.Equal(t, cart.DegradedNotice, placed.Notice)
	assert.Regexp(t, `^ORD-\d{8}$`, placed.OrderID)
	assert.Regexp(t, `^\d{6}$`, placed.ConfirmationCode)
	almostEqual(t, 16.00*1.26, placed.Totals.Total)
}
