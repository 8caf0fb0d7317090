package store

import (
	"strings"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// keyPart lowercases a natural key component and replaces characters that
// are path separators in Firestore document ids and Pebble keys.
func keyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("/", "_", " ", "_").Replace(s)
}

func repairKeyParts(r *domain.RepairPriceRecord) []string {
	return []string{
		keyPart(r.DeviceID),
		keyPart(r.IssueID),
		keyPart(r.Variants.Quality),
		keyPart(r.Variants.Position),
	}
}

func buybackKeyParts(r *domain.BuybackPriceRecord) []string {
	return []string{
		keyPart(r.DeviceID),
		keyPart(r.Storage),
		keyPart(r.Condition),
	}
}
