package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printQuoteDetail(q *domain.QuoteResult) error {
	return writeQuoteDetail(os.Stdout, q)
}

func writeQuoteDetail(w io.Writer, q *domain.QuoteResult) error {
	tw := newTabWriter(w)
	tw.writef("Quote:\t%s\n", q.QuoteID)
	tw.writef("Device:\t%s\n", q.DeviceID)
	tw.writef("Type:\t%s\n", q.Type)
	tw.writef("Price:\t%s\n", money(q.Price, q.Currency))

	keys := make([]string, 0, len(q.Breakdown))
	for k := range q.Breakdown {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		tw.writef("  %s\t%s\n", k, money(q.Breakdown[k], q.Currency))
	}

	if t := q.Tiers; t != nil && t.HasScreen {
		tw.writef("Screen tiers:\t%s / %s / %s\n",
			tier(t.Standard, t.StandardAvailable, q.Currency),
			tier(t.OLED, t.OLEDAvailable, q.Currency),
			tier(t.Original, t.OriginalAvailable, q.Currency),
		)
	}
	return tw.finish()
}

func printDeviceTable(devices []domain.Device) error {
	return writeDeviceTable(os.Stdout, devices)
}

func writeDeviceTable(w io.Writer, devices []domain.Device) error {
	tw := newTabWriter(w)
	tw.writef("ID\tBRAND\tMODEL\tCATEGORY\tYEAR\n")
	for i := range devices {
		d := &devices[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\n",
			d.NormalizedID,
			d.Brand,
			truncate(d.Model, 32),
			d.Category,
			d.ReleaseYear,
		)
	}
	return tw.finish()
}

func printDeviceDetail(d *domain.Device) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", d.NormalizedID)
	tw.writef("Brand:\t%s\n", d.Brand)
	tw.writef("Model:\t%s\n", d.Model)
	tw.writef("Category:\t%s\n", d.Category)
	tw.writef("Released:\t%d\n", d.ReleaseYear)
	if len(d.StorageOptions) > 0 {
		tw.writef("Storage:\t%s\n", strings.Join(d.StorageOptions, ", "))
	}
	return tw.finish()
}

func printDevicePricing(p *domain.DevicePricing) error {
	return writeDevicePricing(os.Stdout, p)
}

func writeDevicePricing(w io.Writer, p *domain.DevicePricing) error {
	tw := newTabWriter(w)
	tw.writef("Device:\t%s\n", p.DeviceID)
	tw.writef("In catalog:\t%v\n", p.InCatalog)
	tw.writef("Buyback active:\t%v\n", p.BuybackActive)

	tw.writef("\nREPAIR\tPRICE\n")
	for _, k := range p.RepairPrices.Keys() {
		tw.writef("%s\t%s\n", k, repairPrice(p.RepairPrices[k]))
	}
	for _, k := range p.UnavailableRepairs {
		tw.writef("%s\t%s\n", k, repairPrice(domain.PriceUnavailable))
	}

	if p.BuybackRowsWithheld > 0 {
		tw.writef("\nBuyback rows withheld:\t%d (anchor not active)\n", p.BuybackRowsWithheld)
	}
	if len(p.BuybackPrices) > 0 {
		tw.writef("\nSTORAGE\tCONDITION\tPAYOUT\n")
		for i := range p.BuybackPrices {
			b := &p.BuybackPrices[i]
			tw.writef("%s\t%s\t%s\n", b.Storage, b.Condition, money(b.Price, domain.CurrencyEUR))
		}
	}
	return tw.finish()
}

func printRepairOptions(opts []domain.RepairOption) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ISSUE\tQUALITY\tPOSITION\tPRICE\n")
	for i := range opts {
		o := &opts[i]
		price := money(o.Price, domain.CurrencyEUR)
		if o.PriceOnRequest {
			price = "on request"
		}
		tw.writef("%s\t%s\t%s\t%s\n",
			o.IssueID,
			dash(o.Variants.Quality),
			dash(o.Variants.Position),
			price,
		)
	}
	return tw.finish()
}

func printAuditReport(r *domain.AuditReport) error {
	return writeAuditReport(os.Stdout, r)
}

func writeAuditReport(w io.Writer, r *domain.AuditReport) error {
	tw := newTabWriter(w)
	tw.writef("Started:\t%s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
	tw.writef("Devices scanned:\t%d\n", r.DevicesScanned)
	tw.writef("Without price:\t%d\n", r.DevicesWithoutPrice)
	tw.writef("Inactive anchors:\t%d\n", r.InactiveAnchors)
	tw.writef("Contact for price:\t%d\n", r.ContactForPrice)

	if len(r.Findings) > 0 {
		tw.writef("\nDEVICE\tREPAIRS\tBUYBACKS\tCONTACT\tANCHOR\tREASON\n")
		for i := range r.Findings {
			f := &r.Findings[i]
			anchor := "-"
			if f.AnchorPresent {
				anchor = fmt.Sprintf("%v", f.ManagedManually)
			}
			tw.writef("%s\t%d\t%d\t%d\t%s\t%s\n",
				f.DeviceID,
				f.RepairRows,
				f.BuybackRows,
				f.ContactItems,
				anchor,
				f.Reason,
			)
		}
	}
	return tw.finish()
}

func money(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}

func tier(v float64, available bool, currency string) string {
	if !available {
		return "n/a"
	}
	return money(v, currency)
}

// repairPrice renders a stored repair price: 0 is contact for price and a
// negative value is not offered.
func repairPrice(v float64) string {
	switch {
	case v > 0:
		return money(v, domain.CurrencyEUR)
	case v == 0:
		return "on request"
	default:
		return "not offered"
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
