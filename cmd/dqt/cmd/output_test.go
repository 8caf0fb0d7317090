package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func TestWriteQuoteDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeQuoteDetail(&buf, &domain.QuoteResult{
		QuoteID:   "q-1",
		DeviceID:  "apple-iphone-13",
		Type:      domain.QuoteRepair,
		Price:     190,
		Breakdown: map[string]float64{"screen_oled": 140, "battery": 50},
		Currency:  domain.CurrencyEUR,
		Tiers: &domain.RepairTiers{
			Standard: 170, OLED: 190,
			StandardAvailable: true, OLEDAvailable: true,
			HasScreen: true,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "190.00 EUR")
	assert.Contains(t, out, "170.00 EUR / 190.00 EUR / n/a")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("battery")), bytes.Index(buf.Bytes(), []byte("screen_oled")),
		"breakdown lines are sorted")
}

func TestWriteDevicePricing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeDevicePricing(&buf, &domain.DevicePricing{
		DeviceID:           "apple-iphone-13",
		InCatalog:          true,
		RepairPrices:       domain.NormalizedPriceMap{"battery": 50, "back_glass": 0},
		UnavailableRepairs: []string{"camera"},
		BuybackPrices: []domain.BuybackPriceRecord{
			{Storage: "128GB", Condition: "perfect", Price: 450},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "50.00 EUR")
	assert.Contains(t, out, "on request")
	assert.Contains(t, out, "not offered")
	assert.Contains(t, out, "450.00 EUR")
	assert.NotContains(t, out, "withheld")
}

func TestWriteDevicePricing_Withheld(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeDevicePricing(&buf, &domain.DevicePricing{
		DeviceID:            "apple-iphone-13",
		RepairPrices:        domain.NormalizedPriceMap{},
		BuybackRowsWithheld: 3,
	}))

	assert.Contains(t, buf.String(), "Buyback rows withheld:")
	assert.Contains(t, buf.String(), "3 (anchor not active)")
	assert.NotContains(t, buf.String(), "PAYOUT")
}

func TestWriteDeviceTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeDeviceTable(&buf, []domain.Device{{
		DeviceIdentity: domain.DeviceIdentity{
			Brand:        "Samsung",
			Model:        "Galaxy Z Fold 5",
			Category:     domain.CategorySmartphone,
			NormalizedID: "samsung-galaxy-z-fold-5",
		},
		ReleaseYear: 2023,
	}}))

	assert.Contains(t, buf.String(), "samsung-galaxy-z-fold-5")
	assert.Contains(t, buf.String(), "2023")
}

func TestWriteAuditReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeAuditReport(&buf, &domain.AuditReport{
		StartedAt:       time.Date(2026, 10, 1, 6, 0, 0, 0, time.UTC),
		DevicesScanned:  3,
		InactiveAnchors: 1,
		Findings: []domain.AuditFinding{
			{DeviceID: "apple-iphone-13", RepairRows: 5, AnchorPresent: true, Reason: "inactive_anchor"},
			{DeviceID: "valve-steam-deck", Reason: "no_prices"},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "2026-10-01 06:00:00")
	assert.Contains(t, out, "inactive_anchor")
	assert.Contains(t, out, "no_prices")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "iPhone 13", max: 32, want: "iPhone 13"},
		{in: "Galaxy Z Fold 5 Enterprise Edition", max: 10, want: "Galaxy ..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.max))
	}
}
