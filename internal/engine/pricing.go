package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// DevicePricing returns the normalized pricing view for a device: the
// offered repair prices, the anchor-gated buyback rows and the anchor itself.
func (eng *Engine) DevicePricing(ctx context.Context, slug string) (*domain.DevicePricing, error) {
	id := normalize.DeviceID(slug)
	if id == "" {
		return nil, fmt.Errorf("%w: device id is required", ErrInvalidRequest)
	}

	data, err := eng.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if data.empty() {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}

	buybacks := data.gatedBuybacks()
	if buybacks == nil {
		buybacks = []domain.BuybackPriceRecord{}
	}

	offered, unavailable := splitPriceMap(normalize.PriceMap(data.repairs))

	return &domain.DevicePricing{
		DeviceID:            id,
		InCatalog:           data.inCatalog,
		RepairPrices:        offered,
		UnavailableRepairs:  unavailable,
		BuybackPrices:       buybacks,
		BuybackRowsWithheld: len(data.buybacks) - len(buybacks),
		Anchor:              data.anchor,
		BuybackActive:       data.anchor.Active(),
	}, nil
}

// splitPriceMap separates not-offered keys so the negative sentinel stays
// inside the engine.
func splitPriceMap(m domain.NormalizedPriceMap) (domain.NormalizedPriceMap, []string) {
	offered := make(domain.NormalizedPriceMap, len(m))
	unavailable := []string{}
	for _, k := range m.Keys() {
		if m[k] < 0 {
			unavailable = append(unavailable, k)
			continue
		}
		offered[k] = m[k]
	}
	return offered, unavailable
}

// OfferedRepairs returns the repair line items a customer may pick for the
// device. Not-offered rows are hidden; contact-for-price rows are kept.
func (eng *Engine) OfferedRepairs(ctx context.Context, slug string) ([]domain.RepairOption, error) {
	id := normalize.DeviceID(slug)
	if id == "" {
		return nil, fmt.Errorf("%w: device id is required", ErrInvalidRequest)
	}

	data, err := eng.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if data.empty() {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}

	return normalize.OfferedRepairs(data.ident, data.repairs), nil
}

// SetPricingAnchor activates or deactivates buyback pricing for a device.
// Only catalog devices can be anchored.
func (eng *Engine) SetPricingAnchor(
	ctx context.Context,
	slug string,
	managedManually bool,
) (*domain.PricingAnchor, error) {
	id := normalize.DeviceID(slug)
	if id == "" {
		return nil, fmt.Errorf("%w: device id is required", ErrInvalidRequest)
	}
	if !eng.catalog.Contains(id) {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}

	a := &domain.PricingAnchor{DeviceID: id, ManagedManually: managedManually}
	if err := eng.store.SetPricingAnchor(ctx, a); err != nil {
		return nil, fmt.Errorf("setting pricing anchor for %s: %w", id, err)
	}

	eng.log.Info("pricing anchor updated",
		"device_id", id,
		"managed_manually", managedManually,
	)
	return a, nil
}
