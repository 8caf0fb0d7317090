package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/device-quote/internal/engine"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// AuditHandler runs the pricing audit on demand.
type AuditHandler struct {
	engine *engine.Engine
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(eng *engine.Engine) *AuditHandler {
	return &AuditHandler{engine: eng}
}

// AuditOutput is the audit report.
type AuditOutput struct {
	Body domain.AuditReport
}

// RunAudit scans the catalog and returns the pricing audit report.
func (h *AuditHandler) RunAudit(ctx context.Context, _ *struct{}) (*AuditOutput, error) {
	report, err := h.engine.RunPricingAudit(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("pricing audit failed: " + err.Error())
	}
	return &AuditOutput{Body: *report}, nil
}

// RegisterAuditRoutes registers the audit endpoint with the Huma API.
func RegisterAuditRoutes(api huma.API, h *AuditHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-pricing-audit",
		Method:      http.MethodPost,
		Path:        "/api/v1/audit",
		Summary:     "Run the pricing audit",
		Description: "Scans every catalog device for missing prices, inactive anchors " +
			"and contact-for-price items. Findings are also sent to the configured notifier.",
		Tags:   []string{"pricing"},
		Errors: []int{http.StatusInternalServerError},
	}, h.RunAudit)
}
