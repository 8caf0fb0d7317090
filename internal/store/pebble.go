package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Pebble key prefixes. Every key is "<family>/<natural key parts joined by />".
const (
	pebblePrefixRepair  = "repair/"
	pebblePrefixBuyback = "buyback/"
	pebblePrefixAnchor  = "anchor/"
)

// PebbleStore implements Store on an embedded Pebble KV directory. Records are
// JSON documents; per-device reads are prefix scans.
type PebbleStore struct {
	db *pebble.DB
}

// NewPebbleStore opens (or creates) the Pebble directory.
func NewPebbleStore(dir string) (*PebbleStore, error) {
	return openPebble(dir, &pebble.Options{})
}

func openPebble(dir string, opts *pebble.Options) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), opts)
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Close flushes and closes the database.
func (s *PebbleStore) Close() error { return s.db.Close() }

// Ping reports whether the database is open and healthy.
func (s *PebbleStore) Ping(context.Context) error {
	_, closer, err := s.db.Get([]byte(pebblePrefixAnchor))
	if err == nil {
		return closer.Close()
	}
	if errors.Is(err, pebble.ErrNotFound) {
		return nil
	}
	return err
}

// Migrate is a no-op: keys carry their own layout.
func (*PebbleStore) Migrate(context.Context) error { return nil }

// ListRepairPrices scans repair/<device>/.
func (s *PebbleStore) ListRepairPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.RepairPriceRecord, error) {
	return scanPrefix[domain.RepairPriceRecord](ctx, s.db, pebblePrefixRepair+keyPart(deviceID)+"/")
}

// ListBuybackPrices scans buyback/<device>/.
func (s *PebbleStore) ListBuybackPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.BuybackPriceRecord, error) {
	return scanPrefix[domain.BuybackPriceRecord](ctx, s.db, pebblePrefixBuyback+keyPart(deviceID)+"/")
}

// GetPricingAnchor reads anchor/<device>, returning nil when absent.
func (s *PebbleStore) GetPricingAnchor(
	_ context.Context,
	deviceID string,
) (*domain.PricingAnchor, error) {
	v, closer, err := s.db.Get([]byte(pebblePrefixAnchor + keyPart(deviceID)))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pebble get anchor: %w", err)
	}
	defer closer.Close()

	var a domain.PricingAnchor
	if err := json.Unmarshal(v, &a); err != nil {
		return nil, fmt.Errorf("decoding pricing anchor %s: %w", deviceID, err)
	}
	return &a, nil
}

// ListPricingAnchors scans every anchor in key order.
func (s *PebbleStore) ListPricingAnchors(ctx context.Context) ([]domain.PricingAnchor, error) {
	return scanPrefix[domain.PricingAnchor](ctx, s.db, pebblePrefixAnchor)
}

// UpsertRepairPrice writes the row under its natural key.
func (s *PebbleStore) UpsertRepairPrice(_ context.Context, r *domain.RepairPriceRecord) error {
	return s.put(pebblePrefixRepair+strings.Join(repairKeyParts(r), "/"), r)
}

// UpsertBuybackPrice writes the row under its natural key.
func (s *PebbleStore) UpsertBuybackPrice(_ context.Context, r *domain.BuybackPriceRecord) error {
	return s.put(pebblePrefixBuyback+strings.Join(buybackKeyParts(r), "/"), r)
}

// SetPricingAnchor writes the anchor and stamps UpdatedAt.
func (s *PebbleStore) SetPricingAnchor(_ context.Context, a *domain.PricingAnchor) error {
	a.UpdatedAt = time.Now().UTC()
	return s.put(pebblePrefixAnchor+keyPart(a.DeviceID), a)
}

func (s *PebbleStore) put(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.db.Set([]byte(key), b, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set %s: %w", key, err)
	}
	return nil
}

func scanPrefix[T any](ctx context.Context, db *pebble.DB, prefix string) ([]T, error) {
	it, err := db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixUpperBound([]byte(prefix)),
	})
	if err != nil {
		return nil, fmt.Errorf("pebble iter %s: %w", prefix, err)
	}
	defer it.Close()

	var out []T
	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(it.Value(), &v); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", it.Key(), err)
		}
		out = append(out, v)
	}
	return out, it.Error()
}

// prefixUpperBound returns the smallest key greater than every key with prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
