package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/device-quote/internal/engine"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// QuoteHandler serves price quotes.
type QuoteHandler struct {
	engine *engine.Engine
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(eng *engine.Engine) *QuoteHandler {
	return &QuoteHandler{engine: eng}
}

// --- Input/Output types ---

// QuoteInput is the request body for a quote.
type QuoteInput struct {
	Body domain.QuoteRequest
}

// QuoteOutput is the response for a quote. Unknown devices and invalid
// answers come back as success=false with status 200.
type QuoteOutput struct {
	Body domain.QuoteResponse
}

// --- Handlers ---

// Quote prices a buyback or repair request.
func (h *QuoteHandler) Quote(ctx context.Context, input *QuoteInput) (*QuoteOutput, error) {
	resp := h.engine.GetQuote(ctx, &input.Body)
	if !resp.Success && resp.ErrorKind == "" {
		return nil, huma.Error500InternalServerError("failed to compute quote: " + resp.Error)
	}
	return &QuoteOutput{Body: resp}, nil
}

// RegisterQuoteRoutes registers the quote endpoint with the Huma API.
func RegisterQuoteRoutes(api huma.API, h *QuoteHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quote",
		Method:      http.MethodPost,
		Path:        "/api/v1/quote",
		Summary:     "Compute a quote",
		Description: "Prices a buyback or repair request for a device. " +
			"Unknown devices and invalid answers return success=false with an error_kind.",
		Tags:   []string{"quotes"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Quote)
}
