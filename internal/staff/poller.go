package staff

import (
	"context"
	"time"

	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/domain"
)

const DefaultInterval = 15 * time.Second

// Client is the read side of the panel: active orders plus table occupancy.
type Client interface {
	ActiveOrders(ctx context.Context) ([]domain.Order, error)
	TablesStatus(ctx context.Context) ([]domain.Table, error)
}

type Snapshot struct {
	Orders []domain.Order
	Tables []domain.Table
	Taken  time.Time
}

// Poller feeds the staff panel a fresh snapshot on a fixed interval. It
// reads engine-held state; nothing is simulated client side.
type Poller struct {
	client   Client
	interval time.Duration
	onUpdate func(Snapshot)
	lg       *logger.Logger
}

func NewPoller(client Client, interval time.Duration, onUpdate func(Snapshot)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		client:   client,
		interval: interval,
		onUpdate: onUpdate,
		lg:       logger.New("staff-panel"),
	}
}

// Run polls immediately, then on every tick, until ctx is cancelled. A failed
// poll is logged and retried on the next tick.
func (p *Poller) Run(ctx context.Context) error {
	p.poll(ctx)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	orders, err := p.client.ActiveOrders(ctx)
	if err != nil {
		p.lg.Error("poll_orders_failed", err, nil)
		return
	}
	tables, err := p.client.TablesStatus(ctx)
	if err != nil {
		p.lg.Error("poll_tables_failed", err, nil)
		return
	}
	p.onUpdate(Snapshot{Orders: orders, Tables: tables, Taken: time.Now().UTC()})
}
