package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restaurant-deluxe/internal/domain"
)

const (
	defaultTableCapacity = 4
	defaultTableLocation = "Main Hall"
	tablePoolSize        = 12
)

type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore { return &PGStore{pool: pool} }

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id                TEXT PRIMARY KEY,
	table_number      TEXT NOT NULL,
	products          TEXT NOT NULL DEFAULT '',
	total             NUMERIC(10,2) NOT NULL DEFAULT 0,
	status            TEXT NOT NULL DEFAULT 'pending',
	confirmation_code TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	notes             TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS orders_active_idx ON orders (created_at) WHERE status <> 'delivered';

CREATE TABLE IF NOT EXISTS tables (
	number           TEXT PRIMARY KEY,
	status           TEXT NOT NULL DEFAULT 'available',
	current_order_id TEXT NOT NULL DEFAULT '',
	capacity         INT NOT NULL DEFAULT 4,
	location         TEXT NOT NULL DEFAULT 'Main Hall',
	last_updated     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          INT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(10,2) NOT NULL DEFAULT 0,
	category    TEXT NOT NULL DEFAULT '',
	available   BOOLEAN NOT NULL DEFAULT true,
	image       TEXT NOT NULL DEFAULT ''
);
`

// Init creates the relations and provisions the fixed table pool
// (01..12, first eight in the main hall, the rest on the terrace).
func (s *PGStore) Init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	for i := 1; i <= tablePoolSize; i++ {
		location := defaultTableLocation
		if i > 8 {
			location = "Terrace"
		}
		_, err := s.pool.Exec(ctx, `
			INSERT INTO tables (number, status, capacity, location)
			VALUES ($1, 'available', $2, $3)
			ON CONFLICT (number) DO NOTHING
		`, fmt.Sprintf("%02d", i), defaultTableCapacity, location)
		if err != nil {
			return fmt.Errorf("provision table %02d: %w", i, err)
		}
	}
	return nil
}

func (s *PGStore) InsertOrder(ctx context.Context, o domain.Order) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, table_number, products, total, status, confirmation_code, created_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, o.ID, o.Table, o.LineItemsSummary, o.Total, string(o.Status), o.ConfirmationCode, o.CreatedAt, o.Notes)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	// Occupy the table in the same transaction; synthesize one if the
	// number is not in the pool.
	_, err = tx.Exec(ctx, `
		INSERT INTO tables (number, status, current_order_id, capacity, location, last_updated)
		VALUES ($1, 'occupied', $2, $3, $4, now())
		ON CONFLICT (number) DO UPDATE SET
			status = 'occupied',
			current_order_id = EXCLUDED.current_order_id,
			last_updated = now()
	`, o.Table, o.ID, defaultTableCapacity, defaultTableLocation)
	if err != nil {
		return fmt.Errorf("occupy table %s: %w", o.Table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *PGStore) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, table_number, products, total, status, confirmation_code, created_at, notes
		FROM orders WHERE id = $1
	`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *PGStore) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var table string
	err = tx.QueryRow(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1 RETURNING table_number
	`, id, string(status)).Scan(&table)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	if status.Terminal() {
		_, err = tx.Exec(ctx, `
			UPDATE tables SET status = 'available', current_order_id = '', last_updated = now()
			WHERE number = $1
		`, table)
		if err != nil {
			return fmt.Errorf("release table %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *PGStore) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, table_number, products, total, status, confirmation_code, created_at, notes
		FROM orders WHERE status <> 'delivered'
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("active orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (s *PGStore) AllOrders(ctx context.Context, day string) ([]domain.Order, error) {
	query := `
		SELECT id, table_number, products, total, status, confirmation_code, created_at, notes
		FROM orders`
	args := []any{}
	if day != "" {
		query += ` WHERE created_at::date = $1::date`
		args = append(args, day)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("all orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (s *PGStore) Tables(ctx context.Context) ([]domain.Table, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT number, status, current_order_id, capacity, location, last_updated
		FROM tables ORDER BY number ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	defer rows.Close()

	var out []domain.Table
	for rows.Next() {
		var t domain.Table
		var status string
		if err := rows.Scan(&t.Number, &status, &t.CurrentOrderID, &t.Capacity, &t.Location, &t.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		t.Status = domain.TableStatus(status)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PGStore) Products(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, price, category, available, image
		FROM products ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Available, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var status string
	if err := row.Scan(&o.ID, &o.Table, &o.LineItemsSummary, &o.Total, &status, &o.ConfirmationCode, &o.CreatedAt, &o.Notes); err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
