package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/device-quote/internal/metrics"
	"github.com/donaldgifford/device-quote/pkg/estimate"
	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

var (
	// ErrDeviceNotFound means the id is neither in the catalog nor present
	// in any pricing record family.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrInvalidRequest wraps every request validation failure.
	ErrInvalidRequest = errors.New("invalid quote request")
)

// Quote outcomes, used as metric labels.
const (
	outcomePriced    = "priced"
	outcomeOnRequest = "on_request"
	outcomeNotFound  = "not_found"
	outcomeInvalid   = "invalid"
	outcomeError     = "error"
)

// pricingData is everything the store knows about one device.
type pricingData struct {
	ident     domain.DeviceIdentity
	inCatalog bool
	repairs   []domain.RepairPriceRecord
	buybacks  []domain.BuybackPriceRecord
	anchor    *domain.PricingAnchor
}

func (p *pricingData) empty() bool {
	return !p.inCatalog && len(p.repairs) == 0 && len(p.buybacks) == 0 && p.anchor == nil
}

// gatedBuybacks returns the buyback rows only when an activated anchor
// allows them to reach customers.
func (p *pricingData) gatedBuybacks() []domain.BuybackPriceRecord {
	if !p.anchor.Active() {
		return nil
	}
	return p.buybacks
}

// GetQuote is the boundary form of Quote: failures come back as
// success:false with an error kind instead of a Go error.
func (eng *Engine) GetQuote(ctx context.Context, req *domain.QuoteRequest) domain.QuoteResponse {
	res, err := eng.Quote(ctx, req)
	if err == nil {
		return domain.QuoteResponse{Success: true, QuoteResult: res}
	}

	resp := domain.QuoteResponse{Error: err.Error()}
	switch {
	case errors.Is(err, ErrDeviceNotFound):
		resp.ErrorKind = domain.ErrorKindNotFound
	case errors.Is(err, ErrInvalidRequest):
		resp.ErrorKind = domain.ErrorKindValidation
	}
	return resp
}

// Quote validates the request, loads the device's pricing and runs the
// matching estimator. It never returns a negative price.
func (eng *Engine) Quote(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResult, error) {
	start := time.Now()
	qtype := string(req.Type)
	if req.Type != domain.QuoteBuyback && req.Type != domain.QuoteRepair {
		qtype = "unknown"
	}

	ctx, span := eng.tracer.Start(ctx, "engine.Quote")
	defer span.End()

	res, err := eng.quote(ctx, req)

	metrics.QuoteDuration.WithLabelValues(qtype).Observe(time.Since(start).Seconds())
	metrics.QuoteRequestsTotal.WithLabelValues(qtype, quoteOutcome(res, err)).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("device.id", res.DeviceID),
		attribute.Float64("quote.price", res.Price),
		attribute.Bool("quote.price_on_request", res.PriceOnRequest),
	)
	if !res.PriceOnRequest {
		metrics.QuotedPrice.WithLabelValues(qtype).Observe(res.Price)
	}
	return res, nil
}

func quoteOutcome(res *domain.QuoteResult, err error) string {
	switch {
	case errors.Is(err, ErrDeviceNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrInvalidRequest):
		return outcomeInvalid
	case err != nil:
		return outcomeError
	case res.PriceOnRequest:
		return outcomeOnRequest
	default:
		return outcomePriced
	}
}

func (eng *Engine) quote(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	id := normalize.DeviceID(req.DeviceSlug)
	data, err := eng.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if data.empty() {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}

	prices := normalize.PriceMap(data.repairs)
	res := &domain.QuoteResult{
		QuoteID:  uuid.NewString(),
		DeviceID: id,
		Type:     req.Type,
		Currency: eng.currency,
	}

	switch req.Type {
	case domain.QuoteRepair:
		eng.quoteRepair(id, req, prices, res)
	case domain.QuoteBuyback:
		eng.quoteBuyback(data, req, prices, res)
	}

	return res, nil
}

func (eng *Engine) quoteRepair(
	id string,
	req *domain.QuoteRequest,
	prices domain.NormalizedPriceMap,
	res *domain.QuoteResult,
) {
	sel := domain.NewRepairSelection(req.SelectedRepairs, req.SelectedScreenQuality)
	est := estimate.Repair(sel, prices)

	for _, issue := range est.MissingIssues {
		metrics.RepairMissingIssuesTotal.WithLabelValues(issue).Inc()
		eng.log.Warn("selected repair has no price row",
			"device_id", id,
			"issue", issue,
		)
	}

	price, ok := est.SelectPrice(sel.SelectedScreenQuality)
	res.Price = price
	res.PriceOnRequest = !ok
	res.Breakdown = make(map[string]float64, len(est.Lines)+1)
	for issue, p := range est.Lines {
		if p > 0 {
			res.Breakdown[issue] = p
		}
	}
	if est.HasScreen && ok {
		if key, known := normalize.ScreenQualityKey(sel.SelectedScreenQuality); known {
			res.Breakdown[key] = prices[key]
		}
	}

	tiers := est.Externalize()
	res.Tiers = &tiers
}

func (eng *Engine) quoteBuyback(
	data *pricingData,
	req *domain.QuoteRequest,
	prices domain.NormalizedPriceMap,
	res *domain.QuoteResult,
) {
	rows := data.gatedBuybacks()
	if len(rows) == 0 && len(data.buybacks) > 0 {
		eng.log.Debug("buyback rows withheld, anchor not active",
			"device_id", data.ident.NormalizedID,
			"rows", len(data.buybacks),
		)
	}

	est := estimate.Buyback(data.ident, req.ConditionAnswers, rows, prices, eng.policy)
	res.Price = est.Price
	res.PriceOnRequest = est.Price <= 0
	if len(rows) == 0 {
		res.Breakdown = map[string]float64{}
		return
	}
	res.Breakdown = est.Breakdown()
}

// load fetches the three record families concurrently. The reader degrades
// failures to empty results, so the only error here is cancellation.
func (eng *Engine) load(ctx context.Context, id string) (*pricingData, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.load")
	defer span.End()
	span.SetAttributes(attribute.String("device.id", id))

	data := &pricingData{}
	if d, ok := eng.catalog.Get(id); ok {
		data.ident = d.DeviceIdentity
		data.inCatalog = true
	} else {
		data.ident = normalize.Identity(id)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := eng.reader.ListRepairPrices(gctx, id)
		data.repairs = rows
		return err
	})
	g.Go(func() error {
		rows, err := eng.reader.ListBuybackPrices(gctx, id)
		data.buybacks = rows
		return err
	})
	g.Go(func() error {
		a, err := eng.reader.GetPricingAnchor(gctx, id)
		data.anchor = a
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading pricing for %s: %w", id, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("pricing.repair_rows", len(data.repairs)),
		attribute.Int("pricing.buyback_rows", len(data.buybacks)),
		attribute.Bool("pricing.anchor_active", data.anchor.Active()),
	)
	return data, nil
}

func validateRequest(req *domain.QuoteRequest) error {
	var errs []error

	if strings.TrimSpace(req.DeviceSlug) == "" {
		errs = append(errs, errors.New("device_slug is required"))
	} else if normalize.DeviceID(req.DeviceSlug) == "" {
		errs = append(errs, fmt.Errorf("device_slug %q has no usable characters", req.DeviceSlug))
	}

	switch req.Type {
	case domain.QuoteRepair:
		if len(domain.NewRepairSelection(req.SelectedRepairs, "").SelectedIssues) == 0 {
			errs = append(errs, errors.New("repair quote requires at least one selected repair"))
		}
	case domain.QuoteBuyback:
	case "":
		errs = append(errs, errors.New("type is required"))
	default:
		errs = append(errs, fmt.Errorf("type %q must be buyback or repair", req.Type))
	}

	if !oneOf(req.SelectedScreenQuality,
		domain.QualityGeneric, domain.QualityOLED, domain.QualityOriginal) {
		errs = append(errs, fmt.Errorf("selected_screen_quality %q is not valid", req.SelectedScreenQuality))
	}
	if !oneOf(req.BatteryHealth, domain.BatteryNormal, domain.BatteryService) {
		errs = append(errs, fmt.Errorf("battery_health %q is not valid", req.BatteryHealth))
	}
	if !oneOf(req.ScreenState, domain.ScreenFlawless, domain.ScreenScratches, domain.ScreenCracked) {
		errs = append(errs, fmt.Errorf("screen_state %q is not valid", req.ScreenState))
	}
	if !oneOf(req.BodyState,
		domain.BodyFlawless, domain.BodyScratches, domain.BodyDents, domain.BodyBent) {
		errs = append(errs, fmt.Errorf("body_state %q is not valid", req.BodyState))
	}
	if req.ControllerCount != nil && *req.ControllerCount < 0 {
		errs = append(errs, errors.New("controller_count must not be negative"))
	}

	return errors.Join(errs...)
}

// oneOf reports whether v is empty (unanswered) or one of allowed.
func oneOf(v string, allowed ...string) bool {
	return v == "" || slices.Contains(allowed, v)
}
