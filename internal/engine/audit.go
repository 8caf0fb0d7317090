package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/metrics"
	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Audit finding reasons. A finding may carry several, comma separated.
const (
	ReasonNoPrices        = "no_prices"
	ReasonInactiveAnchor  = "inactive_anchor"
	ReasonContactForPrice = "contact_for_price"
)

// RunPricingAudit scans every catalog device and reports pricing data that
// will not produce a bookable quote: devices with no rows at all, buyback
// rows held back by a missing or inactive anchor, and zero-priced repair
// rows. The report is sent to the notifier when it has findings.
func (eng *Engine) RunPricingAudit(ctx context.Context) (*domain.AuditReport, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RunPricingAudit")
	defer span.End()

	report, err := eng.audit(ctx)
	if err != nil {
		metrics.AuditRunsTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		return nil, err
	}
	metrics.AuditRunsTotal.WithLabelValues("success").Inc()

	metrics.AuditDevicesScanned.Set(float64(report.DevicesScanned))
	metrics.AuditDevicesWithoutPrice.Set(float64(report.DevicesWithoutPrice))
	metrics.AuditInactiveAnchors.Set(float64(report.InactiveAnchors))
	metrics.AuditContactItems.Set(float64(report.ContactForPrice))

	eng.log.Info("pricing audit complete",
		"devices", report.DevicesScanned,
		"without_price", report.DevicesWithoutPrice,
		"inactive_anchors", report.InactiveAnchors,
		"contact_items", report.ContactForPrice,
		"findings", len(report.Findings),
	)

	if len(report.Findings) > 0 {
		if err := eng.notifier.SendAuditReport(ctx, report); err != nil {
			eng.log.Error("sending audit report failed", "error", err)
		}
	}

	return report, nil
}

func (eng *Engine) audit(ctx context.Context) (*domain.AuditReport, error) {
	report := &domain.AuditReport{StartedAt: eng.now(), Findings: []domain.AuditFinding{}}

	anchors, err := eng.store.ListPricingAnchors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pricing anchors: %w", err)
	}
	active := make(map[string]bool, len(anchors))
	for i := range anchors {
		active[anchors[i].DeviceID] = anchors[i].Active()
	}

	devices := eng.catalog.List(catalog.Filter{})
	findings := make([]domain.AuditFinding, len(devices))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.auditWorkers)
	for i := range devices {
		id := devices[i].NormalizedID
		g.Go(func() error {
			f, err := eng.auditDevice(gctx, id)
			if err != nil {
				return err
			}
			_, f.AnchorPresent = active[id]
			f.ManagedManually = active[id]
			findings[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.DevicesScanned = len(devices)
	for _, f := range findings {
		var reasons []string
		if f.RepairRows == 0 && f.BuybackRows == 0 {
			reasons = append(reasons, ReasonNoPrices)
			report.DevicesWithoutPrice++
		}
		if f.BuybackRows > 0 && !f.ManagedManually {
			reasons = append(reasons, ReasonInactiveAnchor)
			report.InactiveAnchors++
		}
		if f.ContactItems > 0 {
			reasons = append(reasons, ReasonContactForPrice)
			report.ContactForPrice += f.ContactItems
		}
		if len(reasons) == 0 {
			continue
		}
		f.Reason = strings.Join(reasons, ",")
		report.Findings = append(report.Findings, f)
	}

	return report, nil
}

func (eng *Engine) auditDevice(ctx context.Context, id string) (domain.AuditFinding, error) {
	repairs, err := eng.store.ListRepairPrices(ctx, id)
	if err != nil {
		return domain.AuditFinding{}, fmt.Errorf("listing repair prices for %s: %w", id, err)
	}
	buybacks, err := eng.store.ListBuybackPrices(ctx, id)
	if err != nil {
		return domain.AuditFinding{}, fmt.Errorf("listing buyback prices for %s: %w", id, err)
	}

	return domain.AuditFinding{
		DeviceID:     id,
		RepairRows:   len(repairs),
		BuybackRows:  len(buybacks),
		ContactItems: normalize.ContactItems(repairs),
	}, nil
}
