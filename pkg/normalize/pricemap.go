package normalize

import (
	"cmp"
	"slices"
	"strings"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Normalized price map keys.
const (
	KeyScreen         = "screen"
	KeyScreenGeneric  = "screen_generic"
	KeyScreenOLED     = "screen_oled"
	KeyScreenOriginal = "screen_original"
	KeyCharging       = "charging"
	KeyCamera         = "camera"
	KeyCameraRear     = "camera_rear"
	KeyBackGlass      = "back_glass"
	KeyBattery        = "battery"
)

// issueAliases lists the extra keys a legacy issue id also populates.
var issueAliases = map[string][]string{
	"charging_port": {KeyCharging},
	"connector":     {KeyCharging},
	"rear_camera":   {KeyCamera, KeyCameraRear},
	"camera":        {KeyCameraRear},
	"glass_back":    {KeyBackGlass},
}

// screenQualityKeys is checked in order; the first match wins.
var screenQualityKeys = []struct {
	needles []string
	key     string
}{
	{needles: []string{"generic", "lcd"}, key: KeyScreenGeneric},
	{needles: []string{"soft", "oled"}, key: KeyScreenOLED},
	{needles: []string{"refurb", "original"}, key: KeyScreenOriginal},
}

// SortRepairRows orders rows by issue, quality, position and price so that
// every pass over them is deterministic regardless of store order.
func SortRepairRows(rows []domain.RepairPriceRecord) []domain.RepairPriceRecord {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.RepairPriceRecord) int {
		return cmp.Or(
			cmp.Compare(issueKey(a.IssueID), issueKey(b.IssueID)),
			cmp.Compare(strings.ToLower(a.Variants.Quality), strings.ToLower(b.Variants.Quality)),
			cmp.Compare(strings.ToLower(a.Variants.Position), strings.ToLower(b.Variants.Position)),
			cmp.Compare(a.Price, b.Price),
		)
	})
	return sorted
}

// PriceMap reshapes raw repair rows into a map keyed by semantic issue id.
// Not-offered rows keep their negative price so the estimator can refuse to
// quote them. When rows share a key, a bookable price beats contact-for-price,
// which beats not-offered; ties go to the first row in sorted order.
func PriceMap(rows []domain.RepairPriceRecord) domain.NormalizedPriceMap {
	m := make(domain.NormalizedPriceMap)

	for _, row := range SortRepairRows(rows) {
		issue := issueKey(row.IssueID)
		if issue == "" {
			continue
		}

		if issue == KeyScreen {
			setPrice(m, ScreenKey(row.Variants.Quality), row.Price)
			continue
		}

		setPrice(m, issue, row.Price)
		for _, alias := range issueAliases[issue] {
			setPrice(m, alias, row.Price)
		}
	}

	screen, hasScreen := m[KeyScreen]
	generic, hasGeneric := m[KeyScreenGeneric]
	switch {
	case hasScreen && !hasGeneric:
		m[KeyScreenGeneric] = screen
	case hasGeneric && !hasScreen:
		m[KeyScreen] = generic
	}

	return m
}

func setPrice(m domain.NormalizedPriceMap, key string, price float64) {
	if cur, ok := m[key]; ok && priceRank(cur) >= priceRank(price) {
		return
	}
	m[key] = price
}

// priceRank orders bookable above contact-for-price above not-offered.
func priceRank(price float64) int {
	switch {
	case price > 0:
		return 2
	case price == 0:
		return 1
	default:
		return 0
	}
}

// ScreenKey returns the map key a screen row with the given quality lands on.
// Unqualified rows key "screen"; unknown qualities get their own key so they
// never overwrite a known tier.
func ScreenKey(quality string) string {
	q := strings.ToLower(strings.TrimSpace(quality))
	if q == "" {
		return KeyScreen
	}
	for _, sk := range screenQualityKeys {
		for _, needle := range sk.needles {
			if strings.Contains(q, needle) {
				return sk.key
			}
		}
	}
	return KeyScreen + "_" + strings.ReplaceAll(slugify(q), "-", "_")
}

// ScreenQualityKey maps a customer-facing quality choice to its price key.
func ScreenQualityKey(quality string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(quality)) {
	case domain.QualityGeneric:
		return KeyScreenGeneric, true
	case domain.QualityOLED:
		return KeyScreenOLED, true
	case domain.QualityOriginal:
		return KeyScreenOriginal, true
	default:
		return "", false
	}
}

func issueKey(issue string) string {
	return strings.ToLower(strings.TrimSpace(issue))
}

// SortedIssues returns the issue ids lowercased, de-duplicated and sorted.
func SortedIssues(issues []string) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		if k := issueKey(issue); k != "" {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
