package store

// SQL query constants organized by record family.
// All SQL lives here; PostgresStore methods reference these constants.

// Repair price queries.
const (
	queryListRepairPrices = `
		SELECT device_id, issue_id, quality, position, price, image_url
		FROM repair_prices
		WHERE device_id = $1
		ORDER BY issue_id, quality, position, price`

	queryUpsertRepairPrice = `
		INSERT INTO repair_prices (
			device_id, issue_id, quality, position, price, image_url, updated_at
		) VALUES (
			@device_id, @issue_id, @quality, @position, @price, @image_url, now()
		)
		ON CONFLICT (device_id, issue_id, quality, position) DO UPDATE SET
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			updated_at = now()`
)

// Buyback price queries.
const (
	queryListBuybackPrices = `
		SELECT device_id, storage, condition, price
		FROM buyback_prices
		WHERE device_id = $1
		ORDER BY storage, condition`

	queryUpsertBuybackPrice = `
		INSERT INTO buyback_prices (
			device_id, storage, condition, price, updated_at
		) VALUES (
			@device_id, @storage, @condition, @price, now()
		)
		ON CONFLICT (device_id, storage, condition) DO UPDATE SET
			price = EXCLUDED.price,
			updated_at = now()`
)

// Pricing anchor queries.
const (
	queryGetPricingAnchor = `
		SELECT device_id, managed_manually, updated_at
		FROM pricing_anchors
		WHERE device_id = $1`

	queryListPricingAnchors = `
		SELECT device_id, managed_manually, updated_at
		FROM pricing_anchors
		ORDER BY device_id`

	querySetPricingAnchor = `
		INSERT INTO pricing_anchors (device_id, managed_manually, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (device_id) DO UPDATE SET
			managed_manually = EXCLUDED.managed_manually,
			updated_at = now()
		RETURNING updated_at`
)
