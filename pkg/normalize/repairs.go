package normalize

import (
	"strings"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

var foldableVariantWords = []string{"fold", "inner", "outer"}

// OfferedRepairs returns the repair line items a customer may pick for the
// device. Zero-priced rows stay visible as contact-for-price. Not-offered rows
// are hidden except for foldable screen variants on foldable models, which
// are shown as contact-for-price.
func OfferedRepairs(
	ident domain.DeviceIdentity,
	rows []domain.RepairPriceRecord,
) []domain.RepairOption {
	out := make([]domain.RepairOption, 0, len(rows))

	for _, row := range SortRepairRows(rows) {
		if row.Price < 0 && !foldableExempt(ident, row.Variants) {
			continue
		}

		opt := domain.RepairOption{
			IssueID:  issueKey(row.IssueID),
			Variants: row.Variants,
			Price:    row.Price,
			ImageURL: row.ImageURL,
		}
		if row.Price <= 0 {
			opt.Price = 0
			opt.PriceOnRequest = true
		}
		out = append(out, opt)
	}

	return out
}

func foldableExempt(ident domain.DeviceIdentity, v domain.Variants) bool {
	if !ident.IsFoldable() {
		return false
	}
	text := strings.ToLower(v.Quality + " " + v.Position)
	for _, w := range foldableVariantWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// ContactItems counts rows that are offered but have no bookable price.
func ContactItems(rows []domain.RepairPriceRecord) int {
	n := 0
	for _, row := range rows {
		if row.Price == 0 {
			n++
		}
	}
	return n
}
