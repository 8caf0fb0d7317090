// Package notify defines the notification interface and implementations
// for pricing audit delivery.
package notify

import (
	"context"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Notifier delivers pricing audit reports to operators.
type Notifier interface {
	SendAuditReport(ctx context.Context, report *domain.AuditReport) error
}
