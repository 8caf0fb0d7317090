// Package handlers implements HTTP handlers for the device quote API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store   store.Store
	catalog *catalog.Catalog
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store, c *catalog.Catalog) *HealthHandler {
	return &HealthHandler{store: s, catalog: c}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when the pricing store answers and the catalog has
// devices, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if h.catalog == nil || h.catalog.Len() == 0 {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
