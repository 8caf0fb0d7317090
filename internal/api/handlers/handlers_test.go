package handlers_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/engine"
	notifyMocks "github.com/donaldgifford/device-quote/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/device-quote/internal/store/mocks"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

const iphone13 = "apple-iphone-13"

func newTestEngine(t *testing.T, ms *storeMocks.MockStore, mn *notifyMocks.MockNotifier) *engine.Engine {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	return engine.NewEngine(c, ms, mn,
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// expectDevice makes the mock store serve the given rows for id.
func expectDevice(
	ms *storeMocks.MockStore,
	id string,
	repairs []domain.RepairPriceRecord,
	buybacks []domain.BuybackPriceRecord,
	anchor *domain.PricingAnchor,
) {
	ms.EXPECT().ListRepairPrices(mock.Anything, id).Return(repairs, nil).Maybe()
	ms.EXPECT().ListBuybackPrices(mock.Anything, id).Return(buybacks, nil).Maybe()
	ms.EXPECT().GetPricingAnchor(mock.Anything, id).Return(anchor, nil).Maybe()
}

func iphone13Repairs() []domain.RepairPriceRecord {
	return []domain.RepairPriceRecord{
		{DeviceID: iphone13, IssueID: "screen", Variants: domain.Variants{Quality: "generic"}, Price: 120},
		{DeviceID: iphone13, IssueID: "screen", Variants: domain.Variants{Quality: "oled"}, Price: 140},
		{DeviceID: iphone13, IssueID: "battery", Price: 50},
		{DeviceID: iphone13, IssueID: "back", Price: 0},
		{DeviceID: iphone13, IssueID: "camera", Price: -1},
	}
}

func iphone13Buybacks() []domain.BuybackPriceRecord {
	return []domain.BuybackPriceRecord{
		{DeviceID: iphone13, Storage: "128GB", Condition: "perfect", Price: 450},
		{DeviceID: iphone13, Storage: "128GB", Condition: "broken", Price: 120},
	}
}

func bestCaseBody() map[string]any {
	return map[string]any{
		"device_slug":     iphone13,
		"type":            "buyback",
		"storage":         "128GB",
		"turns_on":        true,
		"works_correctly": true,
		"is_unlocked":     true,
		"face_id_working": true,
		"battery_health":  "normal",
		"screen_state":    "flawless",
		"body_state":      "flawless",
	}
}
