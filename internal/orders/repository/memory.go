package repository

import (
	"context"
	"sync"
	"time"

	"restaurant-deluxe/internal/domain"
)

// MemoryStore is an in-process Store with the same occupancy semantics as
// the Postgres implementation. It backs tests and local demos; production
// runs on PGStore.
type MemoryStore struct {
	mu       sync.Mutex
	orders   []domain.Order // insertion order preserved
	tables   map[string]*domain.Table
	products []domain.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: map[string]*domain.Table{}}
}

func (s *MemoryStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 1; i <= tablePoolSize; i++ {
		num := numbered(i)
		if _, ok := s.tables[num]; ok {
			continue
		}
		location := defaultTableLocation
		if i > 8 {
			location = "Terrace"
		}
		s.tables[num] = &domain.Table{
			Number:      num,
			Status:      domain.TableAvailable,
			Capacity:    defaultTableCapacity,
			Location:    location,
			LastUpdated: time.Now().UTC(),
		}
	}
	return nil
}

func (s *MemoryStore) InsertOrder(ctx context.Context, o domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)

	t, ok := s.tables[o.Table]
	if !ok {
		t = &domain.Table{
			Number:   o.Table,
			Capacity: defaultTableCapacity,
			Location: defaultTableLocation,
		}
		s.tables[o.Table] = t
	}
	t.Status = domain.TableOccupied
	t.CurrentOrderID = o.ID
	t.LastUpdated = time.Now().UTC()
	return nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = status
		if status.Terminal() {
			if t, ok := s.tables[s.orders[i].Table]; ok {
				t.Status = domain.TableAvailable
				t.CurrentOrderID = ""
				t.LastUpdated = time.Now().UTC()
			}
		}
		return nil
	}
	return ErrOrderNotFound
}

func (s *MemoryStore) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Order
	for _, o := range s.orders {
		if !o.Status.Terminal() {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) AllOrders(ctx context.Context, day string) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Order
	for _, o := range s.orders {
		if day != "" && o.CreatedAt.Format("2006-01-02") != day {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *MemoryStore) Tables(ctx context.Context) ([]domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Table, 0, len(s.tables))
	for i := 1; i <= tablePoolSize; i++ {
		if t, ok := s.tables[numbered(i)]; ok {
			out = append(out, *t)
		}
	}
	// synthesized tables outside the fixed pool
	for num, t := range s.tables {
		if !inPool(num) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *MemoryStore) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...), nil
}

// SeedProducts loads catalog rows; the catalog is owned by an external
// collaborator, so tests inject it directly.
func (s *MemoryStore) SeedProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, products...)
}

func numbered(i int) string {
	const digits = "0123456789"
	return string([]byte{digits[i/10], digits[i%10]})
}

func inPool(num string) bool {
	for i := 1; i <= tablePoolSize; i++ {
		if numbered(i) == num {
			return true
		}
	}
	return false
}
