package client

import (
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func okQuote(w http.ResponseWriter, price float64) {
	writeJSON(w, http.StatusOK, domain.QuoteResponse{
		Success:     true,
		QuoteResult: &domain.QuoteResult{Price: price, Currency: domain.CurrencyEUR},
	})
}

func TestQuoteSession_Defaults(t *testing.T) {
	t.Parallel()

	s := NewQuoteSession(New("http://example.com"))
	assert.Equal(t, DefaultDebounce, s.debounce)
	assert.Zero(t, s.Seq())
}

func TestQuoteSession_Sends(t *testing.T) {
	t.Parallel()

	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		okQuote(w, 450)
	})
	s := NewQuoteSession(c, WithDebounce(time.Millisecond))

	resp, err := s.Quote(context.Background(), &domain.QuoteRequest{DeviceSlug: "apple-iphone-13"})
	require.NoError(t, err)
	assert.InDelta(t, 450.0, resp.Price, 0.001)
	assert.Equal(t, uint64(1), s.Seq())
}

func TestQuoteSession_DebouncedCallIsDropped(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		okQuote(w, 450)
	})
	s := NewQuoteSession(c, WithDebounce(100*time.Millisecond))

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Quote(context.Background(), &domain.QuoteRequest{DeviceSlug: "apple-iphone-13"})
		firstErr <- err
	}()

	require.Eventually(t, func() bool { return s.Seq() == 1 }, time.Second, time.Millisecond)

	// A newer edit arrives before the first debounce window closes.
	resp, err := s.Quote(context.Background(), &domain.QuoteRequest{DeviceSlug: "apple-iphone-13"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.ErrorIs(t, <-firstErr, ErrStaleQuote)
	assert.Equal(t, int32(1), hits.Load(), "superseded request never reaches the server")
}

func TestQuoteSession_InFlightResponseIsDiscarded(t *testing.T) {
	t.Parallel()

	var (
		calls    atomic.Int32
		received sync.WaitGroup
	)
	received.Add(1)

	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Drain the body so the server watches for the client hanging up.
			_, _ = io.Copy(io.Discard, r.Body)
			received.Done()
			<-r.Context().Done()
			return
		}
		okQuote(w, 120)
	})
	s := NewQuoteSession(c, WithDebounce(0))

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Quote(context.Background(), &domain.QuoteRequest{DeviceSlug: "apple-iphone-13"})
		firstErr <- err
	}()
	received.Wait()

	resp, err := s.Quote(context.Background(), &domain.QuoteRequest{
		DeviceSlug:       "apple-iphone-13",
		ConditionAnswers: domain.ConditionAnswers{ScreenState: domain.ScreenCracked},
	})
	require.NoError(t, err)
	assert.InDelta(t, 120.0, resp.Price, 0.001)

	require.ErrorIs(t, <-firstErr, ErrStaleQuote)
	assert.Equal(t, uint64(2), s.Seq())
}

func TestQuoteSession_CallerCancel(t *testing.T) {
	t.Parallel()

	s := NewQuoteSession(New("http://example.com"), WithDebounce(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Quote(ctx, &domain.QuoteRequest{DeviceSlug: "apple-iphone-13"})
	require.ErrorIs(t, err, context.Canceled)
}
