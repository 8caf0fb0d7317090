package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/pkg/logger"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the pricing audit once and exit",
	Long: "Scans every catalog device for missing prices, contact-for-price\n" +
		"items and inactive buyback anchors, then sends the report to the\n" +
		"configured notifier.",
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	console := logger.NewConsole(os.Stderr, cfg.Logging.Level)

	ctx := context.Background()
	if cfg.Schedule.AuditTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Schedule.AuditTimeout)
		defer cancel()
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	eng := newEngine(cfg, cat, st, logger.New(cfg.Logging.Level, cfg.Logging.Format))

	report, err := eng.RunPricingAudit(ctx)
	if err != nil {
		return fmt.Errorf("running pricing audit: %w", err)
	}

	console.Info("pricing audit complete",
		"scanned", report.DevicesScanned,
		"without_price", report.DevicesWithoutPrice,
		"inactive_anchors", report.InactiveAnchors,
		"contact_for_price", report.ContactForPrice,
	)
	for i := range report.Findings {
		f := &report.Findings[i]
		console.Warn("finding", "device", f.DeviceID, "reason", f.Reason)
	}
	return nil
}
