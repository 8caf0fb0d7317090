package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

// PriceSheet is the YAML document the seed command loads.
type PriceSheet struct {
	Repairs  []domain.RepairPriceRecord  `yaml:"repairs"`
	Buybacks []domain.BuybackPriceRecord `yaml:"buybacks"`
	Anchors  []domain.PricingAnchor      `yaml:"anchors"`
}

// SeedStats counts the records written by Seed.
type SeedStats struct {
	Repairs  int `json:"repairs"`
	Buybacks int `json:"buybacks"`
	Anchors  int `json:"anchors"`
}

// LoadPriceSheet decodes a price sheet and normalizes every device id so
// that legacy slugs land on the same key the quote path reads.
func LoadPriceSheet(r io.Reader) (*PriceSheet, error) {
	var sheet PriceSheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sheet); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding price sheet: %w", err)
	}

	var errs []error
	for i := range sheet.Repairs {
		rec := &sheet.Repairs[i]
		rec.DeviceID = normalize.DeviceID(rec.DeviceID)
		rec.IssueID = strings.ToLower(strings.TrimSpace(rec.IssueID))
		if rec.DeviceID == "" || rec.IssueID == "" {
			errs = append(errs, fmt.Errorf("repairs[%d]: device_id and issue_id are required", i))
		}
	}
	for i := range sheet.Buybacks {
		rec := &sheet.Buybacks[i]
		rec.DeviceID = normalize.DeviceID(rec.DeviceID)
		if rec.DeviceID == "" || strings.TrimSpace(rec.Storage) == "" {
			errs = append(errs, fmt.Errorf("buybacks[%d]: device_id and storage are required", i))
		}
	}
	for i := range sheet.Anchors {
		rec := &sheet.Anchors[i]
		rec.DeviceID = normalize.DeviceID(rec.DeviceID)
		if rec.DeviceID == "" {
			errs = append(errs, fmt.Errorf("anchors[%d]: device_id is required", i))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &sheet, nil
}

// Seed writes every record of the sheet. Writes are upserts, so seeding the
// same sheet twice leaves the store unchanged.
func Seed(ctx context.Context, s Store, sheet *PriceSheet) (SeedStats, error) {
	var stats SeedStats

	for i := range sheet.Repairs {
		if err := s.UpsertRepairPrice(ctx, &sheet.Repairs[i]); err != nil {
			return stats, fmt.Errorf("seeding repair %s/%s: %w",
				sheet.Repairs[i].DeviceID, sheet.Repairs[i].IssueID, err)
		}
		stats.Repairs++
	}
	for i := range sheet.Buybacks {
		if err := s.UpsertBuybackPrice(ctx, &sheet.Buybacks[i]); err != nil {
			return stats, fmt.Errorf("seeding buyback %s/%s: %w",
				sheet.Buybacks[i].DeviceID, sheet.Buybacks[i].Storage, err)
		}
		stats.Buybacks++
	}
	for i := range sheet.Anchors {
		if err := s.SetPricingAnchor(ctx, &sheet.Anchors[i]); err != nil {
			return stats, fmt.Errorf("seeding anchor %s: %w", sheet.Anchors[i].DeviceID, err)
		}
		stats.Anchors++
	}

	return stats, nil
}
