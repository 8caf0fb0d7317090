package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/config"
	"github.com/donaldgifford/device-quote/internal/store"
	"github.com/donaldgifford/device-quote/internal/store/mocks"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func testConfig(rateLimit bool) *config.Config {
	return &config.Config{
		Quote: config.QuoteConfig{Currency: domain.CurrencyEUR, AuditWorkers: 2},
		RateLimit: config.RateLimitConfig{
			Enabled:   &rateLimit,
			PerSecond: 0.001,
			Burst:     1,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, st store.Store) *httptest.Server {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newServer(cfg, newEngine(cfg, cat, st, log), st, log))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().Ping(mock.Anything).Return(nil).Maybe()
	srv := newTestServer(t, testConfig(false), st)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "readyz", path: "/readyz", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantBody: "dq_"},
		{name: "openapi", path: "/openapi.json", wantStatus: http.StatusOK, wantBody: "/api/v1/quote"},
		{name: "swagger ui", path: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: "swagger-ui"},
		{name: "brands", path: "/api/v1/brands", wantStatus: http.StatusOK, wantBody: "Apple"},
		{name: "device", path: "/api/v1/devices/apple-iphone-13", wantStatus: http.StatusOK, wantBody: "iPhone 13"},
		{name: "unknown device", path: "/api/v1/devices/nokia-3310", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.Contains(t, string(body), tt.wantBody)
			}
		})
	}
}

func TestNewServer_QuoteRateLimited(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	srv := newTestServer(t, testConfig(true), st)

	post := func() *http.Response {
		resp, err := http.Post(srv.URL+"/api/v1/quote", "application/json",
			strings.NewReader(`{"device_slug":"","type":"repair"}`))
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	first := post()
	require.Equal(t, http.StatusOK, first.StatusCode)
	var qr domain.QuoteResponse
	require.NoError(t, json.NewDecoder(first.Body).Decode(&qr))
	assert.False(t, qr.Success)
	assert.Equal(t, domain.ErrorKindValidation, qr.ErrorKind)

	assert.Equal(t, http.StatusTooManyRequests, post().StatusCode)

	// Catalog reads are not limited.
	for range 3 {
		resp, err := http.Get(srv.URL + "/api/v1/brands")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestStoreOptions(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Store: config.StoreConfig{
		Backend:   config.BackendFirestore,
		Firestore: config.FirestoreConfig{ProjectID: "quotes-prod", EmulatorHost: "localhost:8681"},
		Pebble:    config.PebbleConfig{Dir: "data/pricing"},
	}}

	opts := storeOptions(cfg)
	assert.Equal(t, store.BackendFirestore, opts.Backend)
	assert.Equal(t, "quotes-prod", opts.Firestore.ProjectID)
	assert.Equal(t, "localhost:8681", opts.Firestore.EmulatorHost)
	assert.Equal(t, "data/pricing", opts.PebbleDir)
}
