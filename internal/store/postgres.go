package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListRepairPrices returns all repair rows for a device.
func (s *PostgresStore) ListRepairPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.RepairPriceRecord, error) {
	rows, err := s.pool.Query(ctx, queryListRepairPrices, deviceID)
	if err != nil {
		return nil, fmt.Errorf("querying repair prices: %w", err)
	}
	defer rows.Close()

	var out []domain.RepairPriceRecord
	for rows.Next() {
		var r domain.RepairPriceRecord
		if err := rows.Scan(
			&r.DeviceID, &r.IssueID, &r.Variants.Quality, &r.Variants.Position,
			&r.Price, &r.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scanning repair price: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// ListBuybackPrices returns all buyback rows for a device.
func (s *PostgresStore) ListBuybackPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.BuybackPriceRecord, error) {
	rows, err := s.pool.Query(ctx, queryListBuybackPrices, deviceID)
	if err != nil {
		return nil, fmt.Errorf("querying buyback prices: %w", err)
	}
	defer rows.Close()

	var out []domain.BuybackPriceRecord
	for rows.Next() {
		var r domain.BuybackPriceRecord
		if err := rows.Scan(&r.DeviceID, &r.Storage, &r.Condition, &r.Price); err != nil {
			return nil, fmt.Errorf("scanning buyback price: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// GetPricingAnchor returns the anchor for a device, or nil when none exists.
func (s *PostgresStore) GetPricingAnchor(
	ctx context.Context,
	deviceID string,
) (*domain.PricingAnchor, error) {
	a := &domain.PricingAnchor{}
	err := s.pool.QueryRow(ctx, queryGetPricingAnchor, deviceID).Scan(
		&a.DeviceID, &a.ManagedManually, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting pricing anchor: %w", err)
	}
	return a, nil
}

// ListPricingAnchors returns every anchor ordered by device id.
func (s *PostgresStore) ListPricingAnchors(ctx context.Context) ([]domain.PricingAnchor, error) {
	rows, err := s.pool.Query(ctx, queryListPricingAnchors)
	if err != nil {
		return nil, fmt.Errorf("querying pricing anchors: %w", err)
	}
	defer rows.Close()

	var out []domain.PricingAnchor
	for rows.Next() {
		var a domain.PricingAnchor
		if err := rows.Scan(&a.DeviceID, &a.ManagedManually, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning pricing anchor: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// UpsertRepairPrice inserts or replaces a repair row keyed by device, issue and variant.
func (s *PostgresStore) UpsertRepairPrice(ctx context.Context, r *domain.RepairPriceRecord) error {
	args := pgx.NamedArgs{
		"device_id": r.DeviceID,
		"issue_id":  r.IssueID,
		"quality":   r.Variants.Quality,
		"position":  r.Variants.Position,
		"price":     r.Price,
		"image_url": r.ImageURL,
	}
	if _, err := s.pool.Exec(ctx, queryUpsertRepairPrice, args); err != nil {
		return fmt.Errorf("upserting repair price: %w", err)
	}
	return nil
}

// UpsertBuybackPrice inserts or replaces a buyback row keyed by device, storage and condition.
func (s *PostgresStore) UpsertBuybackPrice(ctx context.Context, r *domain.BuybackPriceRecord) error {
	args := pgx.NamedArgs{
		"device_id": r.DeviceID,
		"storage":   r.Storage,
		"condition": r.Condition,
		"price":     r.Price,
	}
	if _, err := s.pool.Exec(ctx, queryUpsertBuybackPrice, args); err != nil {
		return fmt.Errorf("upserting buyback price: %w", err)
	}
	return nil
}

// SetPricingAnchor creates or updates the anchor and stamps UpdatedAt.
func (s *PostgresStore) SetPricingAnchor(ctx context.Context, a *domain.PricingAnchor) error {
	if err := s.pool.QueryRow(ctx, querySetPricingAnchor, a.DeviceID, a.ManagedManually).
		Scan(&a.UpdatedAt); err != nil {
		return fmt.Errorf("setting pricing anchor: %w", err)
	}
	return nil
}
