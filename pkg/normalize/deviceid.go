// Package normalize turns free-form device slugs and raw price rows into the
// canonical shapes the estimators work on.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// typePrefixes are the localized "repair"/"buyback" route prefixes that older
// slugs carry. Longest first so "reparation-" wins over "repair-".
var typePrefixes = []string{
	"reparation-",
	"reparatie-",
	"geri-alim-",
	"buyback-",
	"repair-",
	"rachat-",
	"inkoop-",
	"onarim-",
	"tamir-",
}

// Brands lists the brand slugs the catalog carries. A doubled prefix of any of
// these is collapsed.
var Brands = []string{
	"apple",
	"samsung",
	"google",
	"huawei",
	"xiaomi",
	"oneplus",
	"oppo",
	"motorola",
	"sony",
	"nokia",
	"nintendo",
	"microsoft",
	"valve",
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DeviceID maps a raw slug or "brand model" string to the normalized device
// id used as the pricing store key. It never fails; unrecognized input comes
// back as its best-effort slug.
func DeviceID(raw string) string {
	id := slugify(raw)

	for {
		stripped := stripTypePrefix(id)
		if stripped == id {
			break
		}
		id = stripped
	}

	id = collapseBrand(id)

	if (strings.HasPrefix(id, "iphone") || strings.HasPrefix(id, "ipad")) &&
		!strings.HasPrefix(id, "apple-") {
		id = "apple-" + id
	}

	return id
}

func slugify(raw string) string {
	s, _, err := transform.String(accentFolder, raw)
	if err != nil {
		s = raw
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '.':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			pendingSep = true
		}
	}
	return b.String()
}

func stripTypePrefix(id string) string {
	for _, p := range typePrefixes {
		if strings.HasPrefix(id, p) && len(id) > len(p) {
			return id[len(p):]
		}
	}
	return id
}

func collapseBrand(id string) string {
	for _, brand := range Brands {
		doubled := brand + "-" + brand + "-"
		for strings.HasPrefix(id, doubled) {
			id = id[len(brand)+1:]
		}
	}
	return id
}

// Identity builds a best-effort identity for a normalized id that is not in
// the catalog. Brand comes from a known brand prefix and category from model
// keywords.
func Identity(id string) domain.DeviceIdentity {
	ident := domain.DeviceIdentity{
		NormalizedID: id,
		Category:     inferCategory(id),
		Model:        id,
	}
	for _, brand := range Brands {
		if strings.HasPrefix(id, brand+"-") {
			ident.Brand = brand
			ident.Model = strings.TrimPrefix(id, brand+"-")
			break
		}
	}
	return ident
}

func inferCategory(id string) domain.Category {
	switch {
	case strings.Contains(id, "ipad"), strings.Contains(id, "-tab-"), strings.HasSuffix(id, "-tab"):
		return domain.CategoryTablet
	case strings.Contains(id, "watch"):
		return domain.CategorySmartwatch
	case strings.Contains(id, "switch"), strings.Contains(id, "steam-deck"):
		return domain.CategoryConsolePortable
	case strings.Contains(id, "playstation"), strings.Contains(id, "xbox"), strings.Contains(id, "ps5"):
		return domain.CategoryConsoleHome
	default:
		return domain.CategorySmartphone
	}
}
