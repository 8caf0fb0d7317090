package notify

import (
	"context"
	"log/slog"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded reports. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards reports with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAuditReport logs and discards an audit report.
func (n *NoOpNotifier) SendAuditReport(_ context.Context, report *domain.AuditReport) error {
	n.log.Debug("audit notification discarded (no backend configured)",
		"devices", report.DevicesScanned,
		"findings", len(report.Findings),
	)
	return nil
}
