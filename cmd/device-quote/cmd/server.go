package cmd

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/device-quote/api/openapi"
	"github.com/donaldgifford/device-quote/internal/api/handlers"
	"github.com/donaldgifford/device-quote/internal/api/middleware"
	"github.com/donaldgifford/device-quote/internal/config"
	"github.com/donaldgifford/device-quote/internal/engine"
	"github.com/donaldgifford/device-quote/internal/store"
)

const apiTitle = "Device Quote API"

// quoteRoutePrefix is the only path family the rate limiter guards.
const quoteRoutePrefix = "/api/v1/quote"

// newServer wires middleware, probes, metrics and the huma API onto a new
// Echo instance.
func newServer(cfg *config.Config, eng *engine.Engine, st store.Store, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Trace())
	e.Use(middleware.Metrics())
	if cfg.RateLimit.IsEnabled() {
		e.Use(middleware.RateLimit(middleware.RateLimitConfig{
			PerSecond:    cfg.RateLimit.PerSecond,
			Burst:        cfg.RateLimit.Burst,
			PathPrefixes: []string{quoteRoutePrefix},
		}))
	}

	health := handlers.NewHealthHandler(st, eng.Catalog())
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig(apiTitle, Version))
	handlers.RegisterQuoteRoutes(api, handlers.NewQuoteHandler(eng))
	handlers.RegisterDeviceRoutes(api, handlers.NewDevicesHandler(eng))
	handlers.RegisterNormalizeRoutes(api, handlers.NewNormalizeHandler(eng.Catalog()))
	handlers.RegisterAnchorRoutes(api, handlers.NewAnchorHandler(eng))
	handlers.RegisterAuditRoutes(api, handlers.NewAuditHandler(eng))
	openapi.RegisterRoutes(e, apiTitle, openapi.DefaultSpecPath)

	return e
}
