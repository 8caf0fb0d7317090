package openapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		specPath     string
		path         string
		wantStatus   int
		wantBody     string
		wantLocation string
	}{
		{
			name:       "ui uses default spec path",
			path:       "/swagger/index.html",
			wantStatus: http.StatusOK,
			wantBody:   `url: "/openapi.json"`,
		},
		{
			name:       "ui uses custom spec path",
			specPath:   "/api/openapi.json",
			path:       "/swagger/index.html",
			wantStatus: http.StatusOK,
			wantBody:   `url: "/api/openapi.json"`,
		},
		{
			name:         "bare path redirects",
			path:         "/swagger",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
		{
			name:         "trailing slash redirects",
			path:         "/swagger/",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			RegisterRoutes(e, "Device Quote API", tt.specPath)

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
				assert.Contains(t, rec.Body.String(), "<title>Device Quote API</title>")
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}
