// Package domain defines the core business types for the device quote service.
package domain

import (
	"slices"
	"strings"
	"time"
)

// Category represents the kind of device being quoted.
type Category string

// Category constants.
const (
	CategorySmartphone      Category = "smartphone"
	CategoryTablet          Category = "tablet"
	CategorySmartwatch      Category = "smartwatch"
	CategoryConsoleHome     Category = "console_home"
	CategoryConsolePortable Category = "console_portable"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySmartphone, CategoryTablet, CategorySmartwatch,
		CategoryConsoleHome, CategoryConsolePortable:
		return true
	default:
		return false
	}
}

// QuoteType selects which estimator answers a quote request.
type QuoteType string

// Quote type constants.
const (
	QuoteBuyback QuoteType = "buyback"
	QuoteRepair  QuoteType = "repair"
)

// CurrencyEUR is the only currency quotes are issued in.
const CurrencyEUR = "EUR"

// PriceUnavailable is the internal sentinel for "contact for price" or
// "not offered". It never leaves the quote engine.
const PriceUnavailable = -1.0

// DeviceIdentity identifies a device. NormalizedID is the sole join key into
// the pricing store.
type DeviceIdentity struct {
	Brand        string   `json:"brand"         yaml:"brand"`
	Model        string   `json:"model"         yaml:"model"`
	Category     Category `json:"category"      yaml:"category"`
	NormalizedID string   `json:"normalized_id" yaml:"id"`
}

// IsApple reports whether the device is made by Apple.
func (d DeviceIdentity) IsApple() bool {
	return strings.EqualFold(strings.TrimSpace(d.Brand), "apple") ||
		strings.HasPrefix(d.NormalizedID, "apple-")
}

// IsFoldable reports whether the device has a folding display.
func (d DeviceIdentity) IsFoldable() bool {
	id := d.NormalizedID
	return strings.Contains(id, "fold") || strings.Contains(id, "flip")
}

// Device is a catalog entry.
type Device struct {
	DeviceIdentity `yaml:",inline"`

	ReleaseYear    int      `json:"release_year"              yaml:"release_year"`
	StorageOptions []string `json:"storage_options,omitempty" yaml:"storage"`
}

// Variants qualifies a repair price row.
type Variants struct {
	Quality  string `json:"quality,omitempty"  yaml:"quality,omitempty"  firestore:"quality,omitempty"`
	Position string `json:"position,omitempty" yaml:"position,omitempty" firestore:"position,omitempty"`
}

// RepairPriceRecord is one price row per (device, issue, variant).
// Price > 0 is bookable, 0 means contact for price, < 0 means not offered.
type RepairPriceRecord struct {
	DeviceID string   `json:"device_id"           yaml:"device_id"           firestore:"deviceId"`
	IssueID  string   `json:"issue_id"            yaml:"issue_id"            firestore:"issueId"`
	Variants Variants `json:"variants"            yaml:"variants,omitempty"  firestore:"variants"`
	Price    float64  `json:"price"               yaml:"price"               firestore:"price"`
	ImageURL string   `json:"image_url,omitempty" yaml:"image_url,omitempty" firestore:"imageUrl,omitempty"`
}

// BuybackPriceRecord is one payout row per (device, storage, condition).
type BuybackPriceRecord struct {
	DeviceID  string  `json:"device_id" yaml:"device_id" firestore:"deviceId"`
	Storage   string  `json:"storage"   yaml:"storage"   firestore:"storage"`
	Condition string  `json:"condition" yaml:"condition" firestore:"condition"`
	Price     float64 `json:"price"     yaml:"price"     firestore:"price"`
}

// PricingAnchor gates whether buyback rows for a device may reach customers.
type PricingAnchor struct {
	DeviceID        string    `json:"device_id"        yaml:"device_id"        firestore:"deviceId"`
	ManagedManually bool      `json:"managed_manually" yaml:"managed_manually" firestore:"managedManually"`
	UpdatedAt       time.Time `json:"updated_at"       yaml:"-"                firestore:"updatedAt"`
}

// Active reports whether buyback prices may be trusted for the anchored device.
func (a *PricingAnchor) Active() bool {
	return a != nil && a.ManagedManually
}

// NormalizedPriceMap maps semantic issue ids (screen_generic, battery, ...) to prices.
type NormalizedPriceMap map[string]float64

// Lookup returns the price for key and whether it was present.
func (m NormalizedPriceMap) Lookup(key string) (float64, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the map keys in sorted order.
func (m NormalizedPriceMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Battery health answers.
const (
	BatteryNormal  = "normal"
	BatteryService = "service"
)

// Screen state answers.
const (
	ScreenFlawless  = "flawless"
	ScreenScratches = "scratches"
	ScreenCracked   = "cracked"
)

// Body state answers.
const (
	BodyFlawless  = "flawless"
	BodyScratches = "scratches"
	BodyDents     = "dents"
	BodyBent      = "bent"
)

// ConditionAnswers is the buyback questionnaire. Nil pointers mean the
// question has not been answered and are treated as the best case.
type ConditionAnswers struct {
	Storage         string `json:"storage,omitempty"          doc:"Selected storage tier" example:"128GB"`
	TurnsOn         *bool  `json:"turns_on,omitempty"         doc:"Device powers on"`
	WorksCorrectly  *bool  `json:"works_correctly,omitempty"  doc:"All functions work"`
	IsUnlocked      *bool  `json:"is_unlocked,omitempty"      doc:"Device is free of carrier and account locks"`
	BatteryHealth   string `json:"battery_health,omitempty"   doc:"normal or service"`
	FaceIDWorking   *bool  `json:"face_id_working,omitempty"  doc:"Face ID / Touch ID works"`
	ScreenState     string `json:"screen_state,omitempty"     doc:"flawless, scratches or cracked"`
	BodyState       string `json:"body_state,omitempty"       doc:"flawless, scratches, dents or bent"`
	ControllerCount *int   `json:"controller_count,omitempty" doc:"Controllers included (consoles)"`
}

// DefaultConditionAnswers returns the best-case answer set a wizard starts
// from when a model is first selected.
func DefaultConditionAnswers(storage string) ConditionAnswers {
	return ConditionAnswers{
		Storage:       storage,
		BatteryHealth: BatteryNormal,
		ScreenState:   ScreenFlawless,
		BodyState:     BodyFlawless,
	}
}

// Screen quality tiers a customer may choose for a screen repair.
const (
	QualityGeneric  = "generic"
	QualityOLED     = "oled"
	QualityOriginal = "original"
)

// IssueOther is the diagnostic-only repair selection.
const IssueOther = "other"

// IssueScreen is the repair issue that fans out into quality tiers.
const IssueScreen = "screen"

// RepairSelection is the set of repair issues a customer picked.
type RepairSelection struct {
	SelectedIssues        []string `json:"selected_issues"`
	SelectedScreenQuality string   `json:"selected_screen_quality,omitempty"`
}

// NewRepairSelection builds a selection with duplicates removed and the
// diagnostic-only rule applied: selecting "other" clears everything else.
func NewRepairSelection(issues []string, quality string) RepairSelection {
	seen := make(map[string]struct{}, len(issues))
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		issue = strings.ToLower(strings.TrimSpace(issue))
		if issue == "" {
			continue
		}
		if issue == IssueOther {
			return RepairSelection{
				SelectedIssues:        []string{IssueOther},
				SelectedScreenQuality: quality,
			}
		}
		if _, ok := seen[issue]; ok {
			continue
		}
		seen[issue] = struct{}{}
		out = append(out, issue)
	}
	slices.Sort(out)
	return RepairSelection{SelectedIssues: out, SelectedScreenQuality: quality}
}

// Has reports whether issue is selected.
func (s RepairSelection) Has(issue string) bool {
	return slices.Contains(s.SelectedIssues, issue)
}

// QuoteRequest is what the wizard sends on every relevant answer change.
type QuoteRequest struct {
	DeviceSlug            string    `json:"device_slug"                       doc:"Device slug or brand and model" example:"apple-iphone-13" required:"false"`
	Type                  QuoteType `json:"type"                              doc:"buyback or repair" required:"false"`
	SelectedRepairs       []string  `json:"selected_repairs,omitempty"        doc:"Selected repair issue ids"`
	SelectedScreenQuality string    `json:"selected_screen_quality,omitempty" doc:"generic, oled or original"`
	ConditionAnswers
}

// RepairTiers exposes the three screen-quality totals at the boundary.
// Unavailable tiers are 0 with the matching Available flag false.
type RepairTiers struct {
	Standard          float64 `json:"standard"`
	OLED              float64 `json:"oled"`
	Original          float64 `json:"original"`
	StandardAvailable bool    `json:"standard_available"`
	OLEDAvailable     bool    `json:"oled_available"`
	OriginalAvailable bool    `json:"original_available"`
	HasScreen         bool    `json:"has_screen"`
}

// QuoteResult is an ephemeral price estimate. It is never persisted here;
// order submission re-requests it.
type QuoteResult struct {
	QuoteID        string             `json:"quote_id"`
	DeviceID       string             `json:"device_id"`
	Type           QuoteType          `json:"type"`
	Price          float64            `json:"price"`
	PriceOnRequest bool               `json:"price_on_request"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Currency       string             `json:"currency"`
	Tiers          *RepairTiers       `json:"tiers,omitempty"`
}

// Error kinds reported in a failed QuoteResponse.
const (
	ErrorKindNotFound   = "not_found"
	ErrorKindValidation = "validation"
)

// QuoteResponse is the boundary shape: either a result or an error message.
type QuoteResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	*QuoteResult
}

// RepairOption is a repair line item a customer may pick.
type RepairOption struct {
	IssueID        string   `json:"issue_id"`
	Variants       Variants `json:"variants"`
	Price          float64  `json:"price"`
	PriceOnRequest bool     `json:"price_on_request"`
	ImageURL       string   `json:"image_url,omitempty"`
}

// DevicePricing is the normalized pricing view for a single device.
// RepairPrices holds offered items only (zero is contact for price);
// not-offered keys are listed in UnavailableRepairs. BuybackPrices is empty
// unless the anchor is active.
type DevicePricing struct {
	DeviceID            string               `json:"device_id"`
	InCatalog           bool                 `json:"in_catalog"`
	RepairPrices        NormalizedPriceMap   `json:"repair_prices"`
	UnavailableRepairs  []string             `json:"unavailable_repairs"`
	BuybackPrices       []BuybackPriceRecord `json:"buyback_prices"`
	BuybackRowsWithheld int                  `json:"buyback_rows_withheld"`
	Anchor              *PricingAnchor       `json:"anchor,omitempty"`
	BuybackActive       bool                 `json:"buyback_active"`
}

// AuditFinding describes one device whose pricing data needs attention.
type AuditFinding struct {
	DeviceID        string `json:"device_id"`
	RepairRows      int    `json:"repair_rows"`
	BuybackRows     int    `json:"buyback_rows"`
	ContactItems    int    `json:"contact_items"`
	AnchorPresent   bool   `json:"anchor_present"`
	ManagedManually bool   `json:"managed_manually"`
	Reason          string `json:"reason"`
}

// AuditReport summarizes a pricing audit run over the catalog.
type AuditReport struct {
	StartedAt           time.Time      `json:"started_at"`
	DevicesScanned      int            `json:"devices_scanned"`
	DevicesWithoutPrice int            `json:"devices_without_price"`
	InactiveAnchors     int            `json:"inactive_anchors"`
	ContactForPrice     int            `json:"contact_for_price"`
	Findings            []AuditFinding `json:"findings"`
}
