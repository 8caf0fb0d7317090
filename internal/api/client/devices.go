package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// DeviceFilter narrows a catalog listing. Empty fields match everything.
type DeviceFilter struct {
	Brand    string
	Category string
	Query    string
}

// NormalizeResult is the normalizer endpoint response.
type NormalizeResult struct {
	Slug      string         `json:"slug"`
	DeviceID  string         `json:"device_id"`
	InCatalog bool           `json:"in_catalog"`
	Device    *domain.Device `json:"device,omitempty"`
}

// ListDevices returns catalog devices matching the filter.
func (c *Client) ListDevices(ctx context.Context, f DeviceFilter) ([]domain.Device, error) {
	q := url.Values{}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}

	path := "/api/v1/devices"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var devices []domain.Device
	if err := c.get(ctx, path, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Brands returns the brands present in the catalog.
func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := c.get(ctx, "/api/v1/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetDevice returns a single catalog device by id or slug.
func (c *Client) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	var d domain.Device
	if err := c.get(ctx, devicePath(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DevicePricing returns the normalized pricing view for a device.
func (c *Client) DevicePricing(ctx context.Context, id string) (*domain.DevicePricing, error) {
	var p domain.DevicePricing
	if err := c.get(ctx, devicePath(id)+"/prices", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RepairOptions returns the repairs offered for a device.
func (c *Client) RepairOptions(ctx context.Context, id string) ([]domain.RepairOption, error) {
	var opts []domain.RepairOption
	if err := c.get(ctx, devicePath(id)+"/repairs", &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Normalize resolves a free-form slug to a device id.
func (c *Client) Normalize(ctx context.Context, slug string) (*NormalizeResult, error) {
	var r NormalizeResult
	if err := c.get(ctx, "/api/v1/normalize?"+url.Values{"slug": {slug}}.Encode(), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func devicePath(id string) string {
	return "/api/v1/devices/" + url.PathEscape(id)
}
