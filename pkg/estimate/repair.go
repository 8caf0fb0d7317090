// Package estimate computes repair costs and buyback payouts from normalized
// price data. Every function here is pure and total.
package estimate

import (
	"math"

	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// RepairEstimate holds the three screen-quality totals. A tier that cannot be
// quoted is domain.PriceUnavailable.
type RepairEstimate struct {
	Standard  float64 `json:"standard"`
	OLED      float64 `json:"oled"`
	Original  float64 `json:"original"`
	HasScreen bool    `json:"has_screen"`

	// Lines holds the per-issue price used for non-screen issues.
	Lines map[string]float64 `json:"lines"`
	// MissingIssues are selected issues with no price row at all.
	MissingIssues []string `json:"missing_issues,omitempty"`
	// ContactScreenTiers are screen tiers priced at zero.
	ContactScreenTiers []string `json:"contact_screen_tiers,omitempty"`
}

type tier struct {
	key   string
	total float64
	valid bool
}

func (t *tier) value() float64 {
	if !t.valid {
		return domain.PriceUnavailable
	}
	return math.Round(t.total)
}

// Repair sums the selected issues into standard, OLED and original totals.
// A tier is all-or-nothing: any selected component without a bookable price
// for that tier makes the whole tier unavailable.
func Repair(sel domain.RepairSelection, prices domain.NormalizedPriceMap) RepairEstimate {
	tiers := []*tier{
		{key: normalize.KeyScreenGeneric, valid: true},
		{key: normalize.KeyScreenOLED, valid: true},
		{key: normalize.KeyScreenOriginal, valid: true},
	}
	est := RepairEstimate{Lines: make(map[string]float64)}

	for _, issue := range normalize.SortedIssues(sel.SelectedIssues) {
		if issue == domain.IssueScreen {
			est.HasScreen = true
			for _, t := range tiers {
				price, ok := prices.Lookup(t.key)
				if !ok {
					price = domain.PriceUnavailable
				}
				switch {
				case price < 0:
					t.valid = false
				case price == 0:
					t.valid = false
					est.ContactScreenTiers = append(est.ContactScreenTiers, t.key)
				default:
					t.total += price
				}
			}
			continue
		}

		price, ok := prices.Lookup(issue)
		if !ok {
			est.MissingIssues = append(est.MissingIssues, issue)
			continue
		}
		est.Lines[issue] = price
		if price <= 0 {
			for _, t := range tiers {
				t.valid = false
			}
			continue
		}
		for _, t := range tiers {
			t.total += price
		}
	}

	est.Standard = tiers[0].value()
	est.OLED = tiers[1].value()
	est.Original = tiers[2].value()
	return est
}

// Tier returns the estimate for a customer-facing screen quality choice.
func (e RepairEstimate) Tier(quality string) (float64, bool) {
	switch quality {
	case domain.QualityGeneric:
		return e.Standard, true
	case domain.QualityOLED:
		return e.OLED, true
	case domain.QualityOriginal:
		return e.Original, true
	default:
		return 0, false
	}
}

// SelectPrice picks the single number a repair quote reports: the chosen
// screen tier when it is bookable, otherwise the standard tier when no screen
// is involved. Anything else is contact for price and reported as false.
func (e RepairEstimate) SelectPrice(quality string) (float64, bool) {
	if v, ok := e.Tier(quality); ok && v > 0 {
		return v, true
	}
	if !e.HasScreen && e.Standard > 0 {
		return e.Standard, true
	}
	return 0, false
}

// Externalize maps the internal sentinel to the boundary shape, where an
// unavailable tier is zero with its availability flag cleared.
func (e RepairEstimate) Externalize() domain.RepairTiers {
	out := domain.RepairTiers{HasScreen: e.HasScreen}
	out.Standard, out.StandardAvailable = external(e.Standard)
	out.OLED, out.OLEDAvailable = external(e.OLED)
	out.Original, out.OriginalAvailable = external(e.Original)
	return out
}

func external(v float64) (float64, bool) {
	if v <= 0 {
		return 0, false
	}
	return v, true
}
