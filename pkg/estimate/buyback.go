package estimate

import (
	"math"
	"strings"

	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// Adjustment labels used in the buyback breakdown.
const (
	AdjustDead        = "not_turning_on"
	AdjustNotWorking  = "not_working"
	AdjustLocked      = "locked"
	AdjustBattery     = "battery_service"
	AdjustFaceID      = "face_id"
	AdjustScreenScr   = "screen_scratches"
	AdjustScreenCrack = "screen_cracked"
	AdjustBodyScr     = "body_scratches"
	AdjustBodyDents   = "body_dents"
	AdjustBodyBent    = "body_bent"
)

// Adjustment is one applied step of the buyback policy.
type Adjustment struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// BuybackEstimate is the payout and how it was reached.
type BuybackEstimate struct {
	Price       float64      `json:"price"`
	Base        float64      `json:"base"`
	BaseStorage string       `json:"base_storage,omitempty"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
}

// Breakdown returns the base and every applied adjustment keyed by label.
func (e BuybackEstimate) Breakdown() map[string]float64 {
	out := make(map[string]float64, len(e.Adjustments)+1)
	out["base"] = e.Base
	for _, a := range e.Adjustments {
		out[a.Label] = a.Amount
	}
	return out
}

// Buyback starts from the storage-matched base price and applies the policy
// steps in order. Rows must already be gated by the pricing anchor; no rows
// means a payout of 0 (contact for price).
func Buyback(
	ident domain.DeviceIdentity,
	answers domain.ConditionAnswers,
	rows []domain.BuybackPriceRecord,
	repairPrices domain.NormalizedPriceMap,
	policy Policy,
) BuybackEstimate {
	if len(rows) == 0 {
		return BuybackEstimate{}
	}

	base, storage := basePrice(rows, answers.Storage, policy.PreferredCondition)
	est := BuybackEstimate{Base: base, BaseStorage: storage}

	screenCost := repairCost(repairPrices, normalize.KeyScreen, policy.ScreenRepairFallback)
	backCost := repairCost(repairPrices, normalize.KeyBackGlass, policy.BackRepairFallback)
	batteryCost := repairCost(repairPrices, normalize.KeyBattery, policy.BatteryRepairFallback)

	apply := func(label string, delta float64) {
		base += delta
		est.Adjustments = append(est.Adjustments, Adjustment{Label: label, Amount: delta})
	}

	if isFalse(answers.TurnsOn) {
		apply(AdjustDead, -base)
		return est.finish(base)
	}
	if isFalse(answers.WorksCorrectly) {
		apply(AdjustNotWorking, base*policy.NotWorkingFactor-base)
	}
	if isFalse(answers.IsUnlocked) {
		apply(AdjustLocked, -base)
		return est.finish(base)
	}

	if ident.IsApple() &&
		(ident.Category == domain.CategorySmartphone || ident.Category == domain.CategoryTablet) {
		if answers.BatteryHealth == domain.BatteryService {
			apply(AdjustBattery, -batteryCost)
		}
		if isFalse(answers.FaceIDWorking) {
			apply(AdjustFaceID, -policy.FaceIDPenalty)
		}
	}

	switch answers.ScreenState {
	case domain.ScreenScratches:
		apply(AdjustScreenScr, -screenCost*policy.ScreenScratchFactor)
	case domain.ScreenCracked:
		apply(AdjustScreenCrack, -screenCost)
	}

	switch answers.BodyState {
	case domain.BodyScratches:
		apply(AdjustBodyScr, -policy.BodyScratchPenalty)
	case domain.BodyDents:
		apply(AdjustBodyDents, -backCost)
	case domain.BodyBent:
		apply(AdjustBodyBent, -(backCost + policy.BentExtraPenalty))
	}

	return est.finish(base)
}

func (e BuybackEstimate) finish(base float64) BuybackEstimate {
	e.Price = math.Max(0, math.Round(base))
	return e
}

// basePrice picks the row matching the requested storage, preferring the
// preferred condition and then the highest price. Without a match it falls
// back to the highest price across all rows.
func basePrice(rows []domain.BuybackPriceRecord, storage, preferred string) (float64, string) {
	want := storageKey(storage)

	var (
		best      *domain.BuybackPriceRecord
		preferHit bool
	)
	if want != "" {
		for i := range rows {
			r := &rows[i]
			if storageKey(r.Storage) != want {
				continue
			}
			isPreferred := strings.EqualFold(strings.TrimSpace(r.Condition), preferred)
			switch {
			case best == nil:
				best, preferHit = r, isPreferred
			case isPreferred && !preferHit:
				best, preferHit = r, true
			case isPreferred == preferHit && r.Price > best.Price:
				best = r
			}
		}
	}
	if best != nil {
		return best.Price, best.Storage
	}

	top := rows[0]
	for _, r := range rows[1:] {
		if r.Price > top.Price {
			top = r
		}
	}
	return top.Price, top.Storage
}

func storageKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// repairCost uses the real repair price when one is bookable and the policy
// fallback otherwise.
func repairCost(prices domain.NormalizedPriceMap, key string, fallback float64) float64 {
	if v, ok := prices.Lookup(key); ok && v > 0 {
		return v
	}
	return fallback
}

func isFalse(b *bool) bool {
	return b != nil && !*b
}
