package client

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// DefaultDebounce is how long a QuoteSession waits for further edits before
// sending a quote request.
const DefaultDebounce = 300 * time.Millisecond

// ErrStaleQuote is returned for a quote superseded by a newer request in the
// same session. Callers drop it silently.
var ErrStaleQuote = errors.New("quote superseded by a newer request")

// QuoteSession applies last-request-wins to a stream of quote requests from
// one wizard. Each call waits out the debounce window, then sends; any call
// still waiting or in flight when a newer one arrives is canceled and
// returns ErrStaleQuote.
type QuoteSession struct {
	client   *Client
	debounce time.Duration

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// SessionOption configures a QuoteSession.
type SessionOption func(*QuoteSession)

// WithDebounce overrides DefaultDebounce. Zero sends immediately.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *QuoteSession) {
		s.debounce = d
	}
}

// NewQuoteSession creates a session sending through c.
func NewQuoteSession(c *Client, opts ...SessionOption) *QuoteSession {
	s := &QuoteSession{client: c, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote requests a quote unless a newer call supersedes it first.
func (s *QuoteSession) Quote(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResponse, error) {
	ctx, cancel, seq := s.begin(ctx)
	defer cancel()

	if s.debounce > 0 {
		timer := time.NewTimer(s.debounce)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			if s.superseded(seq) {
				return nil, ErrStaleQuote
			}
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.superseded(seq) {
		return nil, ErrStaleQuote
	}

	resp, err := s.client.Quote(ctx, req)
	if s.superseded(seq) {
		return nil, ErrStaleQuote
	}
	return resp, err
}

// Seq returns the sequence number of the latest request.
func (s *QuoteSession) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// begin registers a new request, canceling the previous one.
func (s *QuoteSession) begin(parent context.Context) (context.Context, context.CancelFunc, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.seq++
	return ctx, cancel, s.seq
}

func (s *QuoteSession) superseded(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq != s.seq
}
