package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/donaldgifford/device-quote/internal/config"
)

func TestSetup_NoEndpointKeepsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), config.TracingConfig{}, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.Equal(t, before, otel.GetTracerProvider())
	assert.NoError(t, shutdown(context.Background()))

	// Propagator is installed regardless.
	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestSetup_InstallsProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(before)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})

	cfg := config.TracingConfig{
		Endpoint:    "127.0.0.1:4317",
		Insecure:    true,
		ServiceName: "device-quote",
		SampleRatio: 1,
	}
	shutdown, err := Setup(context.Background(), cfg, "test")
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, shutdown(ctx))
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ratio       float64
		wantSampled bool
	}{
		{name: "always sample", ratio: 1, wantSampled: true},
		{name: "never sample", ratio: 0, wantSampled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tp, err := NewProvider(context.Background(), config.TracingConfig{
				Endpoint:    "127.0.0.1:4317",
				Insecure:    true,
				ServiceName: "device-quote",
				SampleRatio: tt.ratio,
			}, "test")
			require.NoError(t, err)
			t.Cleanup(func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = tp.Shutdown(ctx)
			})

			_, span := tp.Tracer("test").Start(context.Background(), "quote")
			assert.Equal(t, tt.wantSampled, span.SpanContext().IsSampled())
			span.End()
		})
	}
}

func TestNewProvider_RequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(context.Background(), config.TracingConfig{}, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")
}
