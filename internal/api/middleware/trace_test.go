package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// TestTrace swaps the global tracer provider, so it does not run in parallel.
func TestTrace(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	var handlerSpan trace.SpanContext
	e := echo.New()
	e.Use(Trace())
	e.GET("/api/v1/devices/:id", func(c echo.Context) error {
		handlerSpan = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/v1/audit", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "store down")
	})
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	t.Run("continues incoming trace", func(t *testing.T) {
		exporter.Reset()

		const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/apple-iphone-13", http.NoBody)
		req.Header.Set("traceparent", parent)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", rec.Header().Get("X-Trace-ID"))
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", handlerSpan.TraceID().String())

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "GET /api/v1/devices/:id", spans[0].Name)
		assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind)
		assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
	})

	t.Run("server errors mark the span", func(t *testing.T) {
		exporter.Reset()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/audit", http.NoBody)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.NotEmpty(t, spans[0].Events, "error recorded as span event")
	})

	t.Run("probes are not traced", func(t *testing.T) {
		exporter.Reset()

		req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Trace-ID"))
		assert.Empty(t, exporter.GetSpans())
	})
}
