package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/engine"
	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// DevicesHandler serves the device catalog and per-device pricing.
type DevicesHandler struct {
	catalog *catalog.Catalog
	engine  *engine.Engine
}

// NewDevicesHandler creates a new DevicesHandler.
func NewDevicesHandler(eng *engine.Engine) *DevicesHandler {
	return &DevicesHandler{catalog: eng.Catalog(), engine: eng}
}

// --- Input/Output types ---

// ListDevicesInput filters the catalog listing.
type ListDevicesInput struct {
	Brand    string `query:"brand"    doc:"Brand, case insensitive"              example:"apple"`
	Category string `query:"category" doc:"Device category"                      example:"smartphone"`
	Q        string `query:"q"        doc:"Substring of the normalized device id" example:"iphone 13"`
}

// ListDevicesOutput is the response for listing devices.
type ListDevicesOutput struct {
	Body []domain.Device
}

// ListBrandsOutput is the response for listing brands.
type ListBrandsOutput struct {
	Body []string
}

// DeviceIDInput addresses a single device. The id is normalized first.
type DeviceIDInput struct {
	ID string `path:"id" doc:"Device id or slug" example:"apple-iphone-13"`
}

// GetDeviceOutput is the response for a single catalog device.
type GetDeviceOutput struct {
	Body domain.Device
}

// DevicePricingOutput is the normalized pricing view of a device.
type DevicePricingOutput struct {
	Body domain.DevicePricing
}

// RepairOptionsOutput lists the repairs offered for a device.
type RepairOptionsOutput struct {
	Body []domain.RepairOption
}

// --- Handlers ---

// ListDevices returns catalog devices matching the filters.
func (h *DevicesHandler) ListDevices(
	_ context.Context,
	input *ListDevicesInput,
) (*ListDevicesOutput, error) {
	if input.Category != "" && !domain.Category(input.Category).Valid() {
		return nil, huma.Error400BadRequest("unknown category " + input.Category)
	}

	devices := h.catalog.List(catalog.Filter{
		Brand:    input.Brand,
		Category: domain.Category(input.Category),
		Query:    input.Q,
	})
	return &ListDevicesOutput{Body: devices}, nil
}

// ListBrands returns the distinct catalog brands.
func (h *DevicesHandler) ListBrands(_ context.Context, _ *struct{}) (*ListBrandsOutput, error) {
	brands := h.catalog.Brands()
	if brands == nil {
		brands = []string{}
	}
	return &ListBrandsOutput{Body: brands}, nil
}

// GetDevice returns a single catalog device.
func (h *DevicesHandler) GetDevice(
	_ context.Context,
	input *DeviceIDInput,
) (*GetDeviceOutput, error) {
	d, ok := h.catalog.Get(normalize.DeviceID(input.ID))
	if !ok {
		return nil, huma.Error404NotFound("device not found")
	}
	return &GetDeviceOutput{Body: d}, nil
}

// GetDevicePricing returns the repair price map, buyback rows and anchor
// state of a device.
func (h *DevicesHandler) GetDevicePricing(
	ctx context.Context,
	input *DeviceIDInput,
) (*DevicePricingOutput, error) {
	p, err := h.engine.DevicePricing(ctx, input.ID)
	if err != nil {
		return nil, engineError("load device pricing", err)
	}
	return &DevicePricingOutput{Body: *p}, nil
}

// ListRepairOptions returns the repairs a customer may pick for a device.
func (h *DevicesHandler) ListRepairOptions(
	ctx context.Context,
	input *DeviceIDInput,
) (*RepairOptionsOutput, error) {
	opts, err := h.engine.OfferedRepairs(ctx, input.ID)
	if err != nil {
		return nil, engineError("list repair options", err)
	}
	if opts == nil {
		opts = []domain.RepairOption{}
	}
	return &RepairOptionsOutput{Body: opts}, nil
}

// RegisterDeviceRoutes registers catalog and pricing endpoints with the Huma API.
func RegisterDeviceRoutes(api huma.API, h *DevicesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-devices",
		Method:      http.MethodGet,
		Path:        "/api/v1/devices",
		Summary:     "List catalog devices",
		Description: "Returns catalog devices, optionally filtered by brand, category and id substring.",
		Tags:        []string{"devices"},
		Errors:      []int{http.StatusBadRequest},
	}, h.ListDevices)

	huma.Register(api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands",
		Summary:     "List brands",
		Description: "Returns the distinct brands in the catalog, lower cased and sorted.",
		Tags:        []string{"devices"},
	}, h.ListBrands)

	huma.Register(api, huma.Operation{
		OperationID: "get-device",
		Method:      http.MethodGet,
		Path:        "/api/v1/devices/{id}",
		Summary:     "Get a catalog device",
		Description: "Returns a single catalog device by id or slug.",
		Tags:        []string{"devices"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetDevice)

	huma.Register(api, huma.Operation{
		OperationID: "get-device-pricing",
		Method:      http.MethodGet,
		Path:        "/api/v1/devices/{id}/prices",
		Summary:     "Get device pricing",
		Description: "Returns the offered repair prices, the not-offered repair keys, the pricing anchor and, when the anchor is active, the buyback rows of a device.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetDevicePricing)

	huma.Register(api, huma.Operation{
		OperationID: "list-repair-options",
		Method:      http.MethodGet,
		Path:        "/api/v1/devices/{id}/repairs",
		Summary:     "List repair options",
		Description: "Returns the repair line items offered for a device. Contact-for-price items are flagged.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.ListRepairOptions)
}
