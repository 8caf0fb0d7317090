// Package engine orchestrates quoting: it normalizes the device, reads the
// pricing store through a timeout guard, and hands the data to the
// estimators. It also runs the periodic pricing audit.
package engine

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/notify"
	"github.com/donaldgifford/device-quote/internal/store"
	"github.com/donaldgifford/device-quote/pkg/estimate"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

const (
	tracerName          = "github.com/donaldgifford/device-quote/internal/engine"
	defaultAuditWorkers = 4
)

// Engine is the quote orchestrator and the error boundary for everything
// beneath it.
type Engine struct {
	catalog  *catalog.Catalog
	store    store.Store
	reader   store.Reader
	notifier notify.Notifier
	log      *slog.Logger
	tracer   trace.Tracer

	policy       estimate.Policy
	currency     string
	readTimeout  time.Duration
	auditWorkers int
	now          func() time.Time
}

// NewEngine creates a new Engine with injected dependencies. Quote reads go
// through a store.TimeoutReader built from s.
func NewEngine(
	c *catalog.Catalog,
	s store.Store,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		catalog:      c,
		store:        s,
		notifier:     n,
		log:          slog.Default(),
		tracer:       otel.Tracer(tracerName),
		policy:       estimate.DefaultPolicy(),
		currency:     domain.CurrencyEUR,
		readTimeout:  store.DefaultReadTimeout,
		auditWorkers: defaultAuditWorkers,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.reader = store.NewTimeoutReader(s, eng.readTimeout, eng.log)
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPolicy overrides the buyback deduction policy. Zero fields keep their
// defaults.
func WithPolicy(p estimate.Policy) EngineOption {
	return func(e *Engine) {
		e.policy = p.WithDefaults()
	}
}

// WithCurrency sets the currency code stamped on results.
func WithCurrency(code string) EngineOption {
	return func(e *Engine) {
		if code != "" {
			e.currency = code
		}
	}
}

// WithReadTimeout bounds each quote-path store read.
func WithReadTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.readTimeout = d
	}
}

// WithAuditWorkers sets how many devices the audit reads concurrently.
func WithAuditWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.auditWorkers = n
		}
	}
}

// WithTracer sets the tracer used for quote spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// Catalog returns the device catalog the engine quotes against.
func (eng *Engine) Catalog() *catalog.Catalog {
	return eng.catalog
}
