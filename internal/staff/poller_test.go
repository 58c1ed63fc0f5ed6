package staff_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-deluxe/internal/domain"
	"restaurant-deluxe/internal/staff"
)

type fakeClient struct {
	mu     sync.Mutex
	orders []domain.Order
	tables []domain.Table
	fail   bool
	calls  int
}

func (f *fakeClient) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return nil, errors.New("store down")
	}
	return f.orders, nil
}

func (f *fakeClient) TablesStatus(ctx context.Context) ([]domain.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("store down")
	}
	return f.tables, nil
}

func TestPollerDeliversSnapshots(t *testing.T) {
	client := &fakeClient{
		orders: []domain.Order{{ID: "ORD-AAAA1111", Table: "01", Status: domain.StatusPending}},
		tables: []domain.Table{{Number: "01", Status: domain.TableOccupied, CurrentOrderID: "ORD-AAAA1111"}},
	}

	snapshots := make(chan staff.Snapshot, 8)
	p := staff.NewPoller(client, 10*time.Millisecond, func(s staff.Snapshot) {
		select {
		case snapshots <- s:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	var first staff.Snapshot
	select {
	case first = <-snapshots:
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
	require.Len(t, first.Orders, 1)
	assert.Equal(t, "ORD-AAAA1111", first.Orders[0].ID)
	assert.Equal(t, domain.TableOccupied, first.Tables[0].Status)

	// at least one more tick before cancel
	select {
	case <-snapshots:
	case <-time.After(time.Second):
		t.Fatal("poller stopped ticking")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}

func TestPollerKeepsGoingAfterFailure(t *testing.T) {
	client := &fakeClient{fail: true}
	var delivered int
	var mu sync.Mutex
	p := staff.NewPoller(client, 5*time.Millisecond, func(staff.Snapshot) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	// let a few failing polls happen, then recover
	time.Sleep(30 * time.Millisecond)
	client.mu.Lock()
	client.fail = false
	client.mu.Unlock()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return delivered > 0
	}, time.Second, 5*time.Millisecond, "poller should recover after failures")

	cancel()
	<-done

	client.mu.Lock()
	assert.Greater(t, client.calls, 1)
	client.mu.Unlock()
}

func TestPollerDefaultInterval(t *testing.T) {
	p := staff.NewPoller(&fakeClient{}, 0, func(staff.Snapshot) {})
	require.NotNil(t, p)
}
