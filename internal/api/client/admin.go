package client

import (
	"context"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// SetAnchor marks whether a device's buyback prices are managed manually.
func (c *Client) SetAnchor(ctx context.Context, id string, managedManually bool) (*domain.PricingAnchor, error) {
	body := struct {
		ManagedManually bool `json:"managed_manually"`
	}{ManagedManually: managedManually}

	var anchor domain.PricingAnchor
	if err := c.put(ctx, devicePath(id)+"/anchor", body, &anchor); err != nil {
		return nil, err
	}
	return &anchor, nil
}

// RunAudit triggers a pricing audit and returns its report.
func (c *Client) RunAudit(ctx context.Context) (*domain.AuditReport, error) {
	var report domain.AuditReport
	if err := c.post(ctx, "/api/v1/audit", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
