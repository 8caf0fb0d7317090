package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// NormalizeHandler exposes the device id normalizer.
type NormalizeHandler struct {
	catalog *catalog.Catalog
}

// NewNormalizeHandler creates a new NormalizeHandler.
func NewNormalizeHandler(c *catalog.Catalog) *NormalizeHandler {
	return &NormalizeHandler{catalog: c}
}

// NormalizeInput carries the raw slug.
type NormalizeInput struct {
	Slug string `query:"slug" required:"true" doc:"Raw slug or brand and model" example:"Apple iPhone 13 Pro"`
}

// NormalizeResult is the normalized id and its catalog match, if any.
type NormalizeResult struct {
	Slug      string         `json:"slug"`
	DeviceID  string         `json:"device_id"`
	InCatalog bool           `json:"in_catalog"`
	Device    *domain.Device `json:"device,omitempty"`
}

// NormalizeOutput is the response for a normalization.
type NormalizeOutput struct {
	Body NormalizeResult
}

// Normalize returns the pricing-store key for a raw slug.
func (h *NormalizeHandler) Normalize(
	_ context.Context,
	input *NormalizeInput,
) (*NormalizeOutput, error) {
	id := normalize.DeviceID(input.Slug)
	if id == "" {
		return nil, huma.Error400BadRequest("slug has no usable characters")
	}

	res := NormalizeResult{Slug: input.Slug, DeviceID: id}
	if d, ok := h.catalog.Get(id); ok {
		res.InCatalog = true
		res.Device = &d
	}
	return &NormalizeOutput{Body: res}, nil
}

// RegisterNormalizeRoutes registers the normalizer endpoint with the Huma API.
func RegisterNormalizeRoutes(api huma.API, h *NormalizeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "normalize-device-id",
		Method:      http.MethodGet,
		Path:        "/api/v1/normalize",
		Summary:     "Normalize a device slug",
		Description: "Returns the normalized device id used as the pricing store key.",
		Tags:        []string{"devices"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Normalize)
}
