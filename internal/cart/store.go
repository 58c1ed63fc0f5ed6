package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-deluxe/internal/config"
)

const defaultTTL = 24 * time.Hour

// Store keeps serialized carts in Redis keyed by session id, so a customer
// survives a page reload without losing the cart.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(cfg config.RedisConfig) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		}),
		ttl: defaultTTL,
	}
}

func (s *Store) Save(ctx context.Context, sessionID string, c Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return s.client.Set(ctx, cartKey(sessionID), b, s.ttl).Err()
}

// Load restores the session's cart. A missing key yields an empty cart, not
// an error.
func (s *Store) Load(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, err
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Cart{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	return c, nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

func (s *Store) Close() error { return s.client.Close() }

func cartKey(sessionID string) string { return "menu:cart:" + sessionID }
