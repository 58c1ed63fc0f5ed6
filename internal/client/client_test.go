package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-deluxe/internal/cart"
	"restaurant-deluxe/internal/client"
	"restaurant-deluxe/internal/dispatcher"
	"restaurant-deluxe/internal/domain"
	"restaurant-deluxe/internal/orders/repository"
	"restaurant-deluxe/internal/orders/service"
	"restaurant-deluxe/internal/staff"
)

func newAPI(t *testing.T) *client.Client {
	t.Helper()
	store := repository.NewMemoryStore()
	require.NoError(t, store.Init(context.Background()))
	svc := service.NewOrderService(store, nil)
	srv := httptest.NewServer(dispatcher.NewRouter(dispatcher.New(svc)))
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestCustomerCheckoutThroughAPI(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	var c cart.Cart
	c.Add(domain.Product{ID: 1, Name: "Filet Mignon", Price: 34.99}, 1)
	c.Add(domain.Product{ID: 6, Name: "Signature Cocktail", Price: 16.00}, 2)

	placed, err := cart.Checkout(ctx, api, "01", c, "window seat")
	require.NoError(t, err)
	assert.False(t, placed.Degraded)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, placed.OrderID)

	tables, err := api.TablesStatus(ctx)
	require.NoError(t, err)
	var found bool
	for _, tb := range tables {
		if tb.Number == "01" {
			found = true
			assert.Equal(t, domain.TableOccupied, tb.Status)
			assert.Equal(t, placed.OrderID, tb.CurrentOrderID)
		}
	}
	assert.True(t, found)

	active, err := api.ActiveOrders(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "1x Filet Mignon, 2x Signature Cocktail", active[0].LineItemsSummary)
	assert.Equal(t, "window seat", active[0].Notes)
}

func TestCheckoutDegradesWhenAPIUnreachable(t *testing.T) {
	// port 9 is discard; nothing is listening
	api := client.New("http://127.0.0.1:9")

	var c cart.Cart
	c.Add(domain.Product{ID: 5, Name: "Chocolate Souffle", Price: 14.99}, 1)

	placed, err := cart.Checkout(context.Background(), api, "04", c, "")
	require.NoError(t, err)
	assert.True(t, placed.Degraded)
	assert.Equal(t, cart.DegradedNotice, placed.Notice)
}

func TestStaffAdvancesOrderThroughAPI(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	created, err := api.CreateOrder(ctx, domain.CreateOrderRequest{Table: "02", Total: "20.00"})
	require.NoError(t, err)

	for _, st := range []string{"preparing", "ready", "delivered"} {
		msg, err := api.AdvanceStatus(ctx, created.OrderID, st)
		require.NoError(t, err)
		assert.Contains(t, msg, st)
	}

	_, err = api.AdvanceStatus(ctx, created.OrderID, "pending")
	assert.Error(t, err, "backward move rejected through the wire too")

	_, err = api.AdvanceStatus(ctx, "ORD-DEADBEEF", "ready")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	active, err := api.ActiveOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := api.AllOrders(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.StatusDelivered, all[0].Status)
}

func TestPanelPollerOverAPI(t *testing.T) {
	api := newAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := api.CreateOrder(ctx, domain.CreateOrderRequest{Table: "03", Total: "12.00"})
	require.NoError(t, err)

	snapshots := make(chan staff.Snapshot, 1)
	p := staff.NewPoller(api, time.Minute, func(s staff.Snapshot) {
		select {
		case snapshots <- s:
		default:
		}
	})
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	select {
	case s := <-snapshots:
		assert.Len(t, s.Orders, 1)
		assert.Len(t, s.Tables, 12)
	case <-time.After(time.Second):
		t.Fatal("no snapshot")
	}
	cancel()
	<-done
}
