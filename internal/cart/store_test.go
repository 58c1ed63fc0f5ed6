package cart_test

import (
	"context"
	"net"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-deluxe/internal/cart"
	"restaurant-deluxe/internal/config"
)

// needs a running Redis; set REDIS_ADDR (host:port) to enable.
func redisConfig(t *testing.T) config.RedisConfig {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return config.RedisConfig{Host: host, Port: port}
}

func TestStoreSaveLoadClear(t *testing.T) {
	store := cart.NewStore(redisConfig(t))
	defer store.Close()
	ctx := context.Background()
	session := "test-session-" + strconv.Itoa(os.Getpid())

	var c cart.Cart
	c.Add(filet, 2)
	require.NoError(t, store.Save(ctx, session, c))

	restored, err := store.Load(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, c, restored)

	require.NoError(t, store.Clear(ctx, session))
	empty, err := store.Load(ctx, session)
	require.NoError(t, err)
	assert.True(t, empty.Empty(), "missing key restores an empty cart")
}
