package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/donaldgifford/device-quote/internal/metrics"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// DefaultReadTimeout bounds every quote-path store read.
const DefaultReadTimeout = 3 * time.Second

// TimeoutReader wraps a Reader so that a slow or failing backend degrades to
// an empty result instead of an error. Its methods never return a non-nil error.
type TimeoutReader struct {
	next    Reader
	timeout time.Duration
	log     *slog.Logger
}

// NewTimeoutReader wraps next. A non-positive timeout uses DefaultReadTimeout.
func NewTimeoutReader(next Reader, timeout time.Duration, log *slog.Logger) *TimeoutReader {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &TimeoutReader{next: next, timeout: timeout, log: log}
}

// ListRepairPrices returns the rows, or nil on timeout or error.
func (r *TimeoutReader) ListRepairPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.RepairPriceRecord, error) {
	return safeGet(ctx, r, FamilyRepair, deviceID, func(ctx context.Context) ([]domain.RepairPriceRecord, error) {
		return r.next.ListRepairPrices(ctx, deviceID)
	}), nil
}

// ListBuybackPrices returns the rows, or nil on timeout or error.
func (r *TimeoutReader) ListBuybackPrices(
	ctx context.Context,
	deviceID string,
) ([]domain.BuybackPriceRecord, error) {
	return safeGet(ctx, r, FamilyBuyback, deviceID, func(ctx context.Context) ([]domain.BuybackPriceRecord, error) {
		return r.next.ListBuybackPrices(ctx, deviceID)
	}), nil
}

// GetPricingAnchor returns the anchor, or nil on absence, timeout or error.
func (r *TimeoutReader) GetPricingAnchor(
	ctx context.Context,
	deviceID string,
) (*domain.PricingAnchor, error) {
	return safeGet(ctx, r, FamilyAnchor, deviceID, func(ctx context.Context) (*domain.PricingAnchor, error) {
		return r.next.GetPricingAnchor(ctx, deviceID)
	}), nil
}

type result[T any] struct {
	v   T
	err error
}

// safeGet runs fn under the read timeout. The call runs in its own goroutine
// so a backend that ignores its context still cannot hold the caller past
// the deadline.
func safeGet[T any](
	ctx context.Context,
	r *TimeoutReader,
	family, deviceID string,
	fn func(context.Context) (T, error),
) T {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn(ctx)
		ch <- result[T]{v: v, err: err}
	}()

	var res result[T]
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	metrics.StoreReadDuration.WithLabelValues(family).Observe(time.Since(start).Seconds())

	switch {
	case res.err == nil:
		return res.v
	case errors.Is(res.err, ErrNotFound):
		return zero
	case errors.Is(res.err, context.DeadlineExceeded):
		metrics.StoreReadTimeoutsTotal.WithLabelValues(family).Inc()
		r.log.Warn("store read timed out, degrading to empty",
			"family", family,
			"device_id", deviceID,
			"timeout", r.timeout,
		)
	default:
		metrics.StoreReadErrorsTotal.WithLabelValues(family).Inc()
		r.log.Warn("store read failed, degrading to empty",
			"family", family,
			"device_id", deviceID,
			"error", res.err,
		)
	}
	return zero
}
