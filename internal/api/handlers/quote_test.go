package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/device-quote/internal/api/handlers"
	notifyMocks "github.com/donaldgifford/device-quote/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/device-quote/internal/store/mocks"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func decodeQuote(t *testing.T, body []byte) domain.QuoteResponse {
	t.Helper()
	var resp domain.QuoteResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestQuote_Buyback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		anchor        *domain.PricingAnchor
		wantPrice     float64
		wantOnRequest bool
	}{
		{
			name:      "active anchor prices the device",
			anchor:    &domain.PricingAnchor{DeviceID: iphone13, ManagedManually: true},
			wantPrice: 450,
		},
		{
			name:          "missing anchor withholds buyback rows",
			anchor:        nil,
			wantOnRequest: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			expectDevice(ms, iphone13, iphone13Repairs(), iphone13Buybacks(), tt.anchor)

			h := handlers.NewQuoteHandler(newTestEngine(t, ms, notifyMocks.NewMockNotifier(t)))
			_, api := humatest.New(t)
			handlers.RegisterQuoteRoutes(api, h)

			resp := api.Post("/api/v1/quote", bestCaseBody())
			require.Equal(t, http.StatusOK, resp.Code)

			got := decodeQuote(t, resp.Body.Bytes())
			require.True(t, got.Success)
			require.NotNil(t, got.QuoteResult)
			assert.Equal(t, iphone13, got.DeviceID)
			assert.Equal(t, domain.QuoteBuyback, got.Type)
			assert.Equal(t, "EUR", got.Currency)
			assert.NotEmpty(t, got.QuoteID)
			assert.InDelta(t, tt.wantPrice, got.Price, 0.001)
			assert.Equal(t, tt.wantOnRequest, got.PriceOnRequest)
		})
	}
}

func TestQuote_Repair(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	expectDevice(ms, iphone13, iphone13Repairs(), nil, nil)

	h := handlers.NewQuoteHandler(newTestEngine(t, ms, notifyMocks.NewMockNotifier(t)))
	_, api := humatest.New(t)
	handlers.RegisterQuoteRoutes(api, h)

	resp := api.Post("/api/v1/quote", map[string]any{
		"device_slug":             "Apple iPhone 13",
		"type":                    "repair",
		"selected_repairs":        []string{"screen", "battery"},
		"selected_screen_quality": "oled",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	got := decodeQuote(t, resp.Body.Bytes())
	require.True(t, got.Success)
	assert.Equal(t, iphone13, got.DeviceID)
	assert.InDelta(t, 190.0, got.Price, 0.001)
	assert.False(t, got.PriceOnRequest)
	require.NotNil(t, got.Tiers)
	assert.True(t, got.Tiers.HasScreen)
	assert.True(t, got.Tiers.OLEDAvailable)
	assert.False(t, got.Tiers.OriginalAvailable)
}

func TestQuote_BusinessFailuresAre200(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     map[string]any
		setup    func(ms *storeMocks.MockStore)
		wantKind string
	}{
		{
			name: "unknown device",
			body: map[string]any{"device_slug": "nokia-3310", "type": "buyback"},
			setup: func(ms *storeMocks.MockStore) {
				expectDevice(ms, "nokia-3310", nil, nil, nil)
			},
			wantKind: domain.ErrorKindNotFound,
		},
		{
			name:     "missing type",
			body:     map[string]any{"device_slug": iphone13},
			wantKind: domain.ErrorKindValidation,
		},
		{
			name:     "invalid type",
			body:     map[string]any{"device_slug": iphone13, "type": "trade_in"},
			wantKind: domain.ErrorKindValidation,
		},
		{
			name:     "repair without selection",
			body:     map[string]any{"device_slug": iphone13, "type": "repair"},
			wantKind: domain.ErrorKindValidation,
		},
		{
			name: "invalid screen state",
			body: map[string]any{
				"device_slug":  iphone13,
				"type":         "buyback",
				"screen_state": "shattered",
			},
			wantKind: domain.ErrorKindValidation,
		},
		{
			name:     "missing slug",
			body:     map[string]any{"type": "buyback"},
			wantKind: domain.ErrorKindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			if tt.setup != nil {
				tt.setup(ms)
			}

			h := handlers.NewQuoteHandler(newTestEngine(t, ms, notifyMocks.NewMockNotifier(t)))
			_, api := humatest.New(t)
			handlers.RegisterQuoteRoutes(api, h)

			resp := api.Post("/api/v1/quote", tt.body)
			require.Equal(t, http.StatusOK, resp.Code)

			got := decodeQuote(t, resp.Body.Bytes())
			assert.False(t, got.Success)
			assert.Equal(t, tt.wantKind, got.ErrorKind)
			assert.NotEmpty(t, got.Error)
			assert.Nil(t, got.QuoteResult)
		})
	}
}

func TestQuote_CanceledRequestIs500(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListRepairPrices(mock.Anything, iphone13).Return(nil, nil).Maybe()
	ms.EXPECT().ListBuybackPrices(mock.Anything, iphone13).Return(nil, nil).Maybe()
	ms.EXPECT().GetPricingAnchor(mock.Anything, iphone13).Return(nil, nil).Maybe()

	h := handlers.NewQuoteHandler(newTestEngine(t, ms, notifyMocks.NewMockNotifier(t)))
	_, api := humatest.New(t)
	handlers.RegisterQuoteRoutes(api, h)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := api.PostCtx(ctx, "/api/v1/quote", bestCaseBody())
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to compute quote")
}
