package client

import (
	"context"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Quote requests a repair or buyback estimate. Business failures (unknown
// device, invalid request) come back as a response with Success false, not
// as an error.
func (c *Client) Quote(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResponse, error) {
	var resp domain.QuoteResponse
	if err := c.post(ctx, "/api/v1/quote", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
