package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-deluxe/internal/domain"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.StatusPending, domain.StatusPreparing, domain.StatusReady, domain.StatusDelivered,
	} {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, domain.OrderStatus("burnt").Valid())
	assert.False(t, domain.OrderStatus("").Valid())
}

func TestStatusForwardOnly(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
		ok       bool
	}{
		{domain.StatusPending, domain.StatusPreparing, true},
		{domain.StatusPending, domain.StatusDelivered, true}, // skipping ahead is still forward
		{domain.StatusPreparing, domain.StatusReady, true},
		{domain.StatusReady, domain.StatusDelivered, true},
		{domain.StatusPreparing, domain.StatusPending, false},
		{domain.StatusDelivered, domain.StatusReady, false},
		{domain.StatusReady, domain.StatusReady, false},
		{domain.StatusDelivered, domain.StatusDelivered, false},
		{domain.OrderStatus("burnt"), domain.StatusReady, false},
		{domain.StatusPending, domain.OrderStatus("burnt"), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanAdvanceTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, domain.StatusDelivered.Terminal())
	assert.False(t, domain.StatusReady.Terminal())
}
