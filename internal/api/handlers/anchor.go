package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/device-quote/internal/engine"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// AnchorHandler manages pricing anchors.
type AnchorHandler struct {
	engine *engine.Engine
}

// NewAnchorHandler creates a new AnchorHandler.
func NewAnchorHandler(eng *engine.Engine) *AnchorHandler {
	return &AnchorHandler{engine: eng}
}

// SetAnchorInput is the input for setting a device's pricing anchor.
type SetAnchorInput struct {
	ID   string `path:"id" doc:"Device id or slug" example:"apple-iphone-13"`
	Body struct {
		ManagedManually bool `json:"managed_manually" doc:"Allow buyback rows to reach customers"`
	}
}

// SetAnchorOutput is the stored anchor.
type SetAnchorOutput struct {
	Body domain.PricingAnchor
}

// SetAnchor activates or deactivates buyback pricing for a catalog device.
func (h *AnchorHandler) SetAnchor(ctx context.Context, input *SetAnchorInput) (*SetAnchorOutput, error) {
	a, err := h.engine.SetPricingAnchor(ctx, input.ID, input.Body.ManagedManually)
	if err != nil {
		return nil, engineError("set pricing anchor", err)
	}
	return &SetAnchorOutput{Body: *a}, nil
}

// RegisterAnchorRoutes registers the anchor endpoint with the Huma API.
func RegisterAnchorRoutes(api huma.API, h *AnchorHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "set-pricing-anchor",
		Method:      http.MethodPut,
		Path:        "/api/v1/devices/{id}/anchor",
		Summary:     "Set a pricing anchor",
		Description: "Marks a catalog device's buyback prices as managed manually, " +
			"which lets them reach customers. Setting false withholds them.",
		Tags:   []string{"pricing"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.SetAnchor)
}
