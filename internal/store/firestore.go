package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Firestore collection names.
const (
	collectionRepairPrices   = "repairPrices"
	collectionBuybackPrices  = "buybackPrices"
	collectionPricingAnchors = "pricingAnchors"
)

const firestoreIDSeparator = "__"

// FirestoreStore implements Store on Google Cloud Firestore. Repair and
// buyback rows are documents keyed by their natural key; anchors are keyed by
// device id.
type FirestoreStore struct {
	provider *FirestoreProvider
}

// NewFirestoreStore wraps a provider. The client is created on first use.
func NewFirestoreStore(provider *FirestoreProvider) *FirestoreStore {
	return &FirestoreStore{provider: provider}
}

// Close releases the Firestore client.
func (s *FirestoreStore) Close() error {
	return s.provider.Close()
}

// Ping reads at most one anchor document to confirm the backend answers.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	client, err := s.provider.Client(ctx)
	if err != nil {
		return err
	}
	iter := client.Collection(collectionPricingAnchors).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return wrapFirestoreError("firestore.ping", err)
	}
	return nil
}

// Migrate is a no-op: Firestore collections are created on first write.
func (*FirestoreStore) Migrate(context.Context) error {
	return nil
}

// ListRepairPrices returns all repair rows for a device.
func (s *FirestoreStore) ListRepairPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.RepairPriceRecord, error) {
	return queryDocs[domain.RepairPriceRecord](ctx, s.provider, collectionRepairPrices, deviceID)
}

// ListBuybackPrices returns all buyback rows for a device.
func (s *FirestoreStore) ListBuybackPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.BuybackPriceRecord, error) {
	return queryDocs[domain.BuybackPriceRecord](ctx, s.provider, collectionBuybackPrices, deviceID)
}

// GetPricingAnchor returns the anchor document, or nil when it does not exist.
func (s *FirestoreStore) GetPricingAnchor(
	ctx context.Context,
	deviceID string,
) (*domain.PricingAnchor, error) {
	client, err := s.provider.Client(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := client.Collection(collectionPricingAnchors).Doc(keyPart(deviceID)).Get(ctx)
	if err != nil {
		wrapped := wrapFirestoreError("firestore.getPricingAnchor", err)
		if errors.Is(wrapped, ErrNotFound) {
			return nil, nil
		}
		return nil, wrapped
	}

	var a domain.PricingAnchor
	if err := snap.DataTo(&a); err != nil {
		return nil, fmt.Errorf("decoding pricing anchor %s: %w", deviceID, err)
	}
	return &a, nil
}

// ListPricingAnchors returns every anchor ordered by document id.
func (s *FirestoreStore) ListPricingAnchors(ctx context.Context) ([]domain.PricingAnchor, error) {
	client, err := s.provider.Client(ctx)
	if err != nil {
		return nil, err
	}

	iter := client.Collection(collectionPricingAnchors).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	return collectDocs[domain.PricingAnchor](iter, "firestore.listPricingAnchors")
}

// UpsertRepairPrice writes the row under its natural-key document id.
func (s *FirestoreStore) UpsertRepairPrice(ctx context.Context, r *domain.RepairPriceRecord) error {
	id := strings.Join(repairKeyParts(r), firestoreIDSeparator)
	return s.set(ctx, collectionRepairPrices, id, r, "firestore.upsertRepairPrice")
}

// UpsertBuybackPrice writes the row under its natural-key document id.
func (s *FirestoreStore) UpsertBuybackPrice(ctx context.Context, r *domain.BuybackPriceRecord) error {
	id := strings.Join(buybackKeyParts(r), firestoreIDSeparator)
	return s.set(ctx, collectionBuybackPrices, id, r, "firestore.upsertBuybackPrice")
}

// SetPricingAnchor writes the anchor and stamps UpdatedAt.
func (s *FirestoreStore) SetPricingAnchor(ctx context.Context, a *domain.PricingAnchor) error {
	a.UpdatedAt = time.Now().UTC()
	return s.set(ctx, collectionPricingAnchors, keyPart(a.DeviceID), a, "firestore.setPricingAnchor")
}

func (s *FirestoreStore) set(ctx context.Context, collection, id string, data any, op string) error {
	client, err := s.provider.Client(ctx)
	if err != nil {
		return err
	}
	if _, err := client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return wrapFirestoreError(op, err)
	}
	return nil
}

func queryDocs[T any](
	ctx context.Context,
	provider *FirestoreProvider,
	collection, deviceID string,
) ([]T, error) {
	client, err := provider.Client(ctx)
	if err != nil {
		return nil, err
	}

	iter := client.Collection(collection).
		Where("deviceId", "==", deviceID).
		Documents(ctx)
	return collectDocs[T](iter, "firestore.query."+collection)
}

func collectDocs[T any](iter *firestore.DocumentIterator, op string) ([]T, error) {
	defer iter.Stop()

	var out []T
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, wrapFirestoreError(op, err)
		}

		var v T
		if err := snap.DataTo(&v); err != nil {
			return nil, fmt.Errorf("%s: decoding %s: %w", op, snap.Ref.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}
