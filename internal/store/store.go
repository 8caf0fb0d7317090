// Package store defines the pricing store abstraction for device-quote.
// Quoting depends only on Reader; seeding and admin operations use Store.
// Three backends implement Store: Postgres, Firestore and an embedded Pebble KV.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Record families, used as metric and log labels.
const (
	FamilyRepair  = "repair"
	FamilyBuyback = "buyback"
	FamilyAnchor  = "anchor"
)

// Supported backend names.
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
	BackendPebble    = "pebble"
)

// ErrNotFound is returned by backends when a single record does not exist.
// Reader methods translate it to an empty result.
var ErrNotFound = errors.New("record not found")

// Reader is the read-only view of the pricing store used while quoting.
// An empty result is valid input, never an error.
type Reader interface {
	// ListRepairPrices returns every repair price row for the device.
	ListRepairPrices(ctx context.Context, deviceID string) ([]domain.RepairPriceRecord, error)
	// ListBuybackPrices returns every buyback price row for the device.
	ListBuybackPrices(ctx context.Context, deviceID string) ([]domain.BuybackPriceRecord, error)
	// GetPricingAnchor returns the anchor for the device, or nil when absent.
	GetPricingAnchor(ctx context.Context, deviceID string) (*domain.PricingAnchor, error)
}

// Store is the full pricing store. Writes are last-write-wins.
type Store interface {
	Reader

	UpsertRepairPrice(ctx context.Context, r *domain.RepairPriceRecord) error
	UpsertBuybackPrice(ctx context.Context, r *domain.BuybackPriceRecord) error
	SetPricingAnchor(ctx context.Context, a *domain.PricingAnchor) error
	ListPricingAnchors(ctx context.Context) ([]domain.PricingAnchor, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}
