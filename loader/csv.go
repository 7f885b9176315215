package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/adlens-io/adlens/engine"
	"github.com/adlens-io/adlens/schema"
)

// ============================================================================
// CSV LOADER — Parses the campaign CSV into an engine.Dataset
// ============================================================================
// Headers are matched against the schema by their normalized key, so column
// order in the file does not matter and unknown columns are silently
// skipped. An empty or unparseable numeric cell becomes NaN and an empty
// string cell stays "" — the engine's quality check counts both as missing.
// ============================================================================

// ErrNotFound signals a missing input file.
var ErrNotFound = errors.New("input file not found")

// LoadFile reads and parses a campaign CSV from disk.
func LoadFile(path string) (*engine.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses CSV bytes into a Dataset.
func Parse(data []byte) (*engine.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // row length validated per column mapping

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	// Column index → schema key. Unmapped columns are skipped.
	mappings := make([]string, len(headers))
	for i, h := range headers {
		key := schema.Normalize(h)
		if _, ok := schema.Lookup(key); ok {
			mappings[i] = key
		}
	}

	var records []engine.CampaignRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		rec := blankRecord()
		for i, val := range row {
			if i >= len(mappings) || mappings[i] == "" {
				continue
			}
			setField(&rec, mappings[i], strings.TrimSpace(val))
		}
		records = append(records, rec)
	}

	return engine.NewDataset(records), nil
}

// blankRecord starts every numeric field at NaN so that a column absent
// from the file (or an unmapped cell) counts as missing.
func blankRecord() engine.CampaignRecord {
	nan := math.NaN()
	return engine.CampaignRecord{
		DailyBudget:    nan,
		Impressions:    nan,
		Clicks:         nan,
		Conversions:    nan,
		TotalCost:      nan,
		Revenue:        nan,
		CTR:            nan,
		ConversionRate: nan,
		CPC:            nan,
		CPA:            nan,
		ROAS:           nan,
	}
}

func setField(rec *engine.CampaignRecord, key, val string) {
	switch key {
	case "campaign_id":
		rec.ID = val
	case "platform":
		rec.Platform = val
	case "campaign_type":
		rec.CampaignType = val
	case "target_audience":
		rec.TargetAudience = val
	default:
		*measureField(rec, key) = parseMeasure(val)
	}
}

func measureField(rec *engine.CampaignRecord, key string) *float64 {
	switch key {
	case "daily_budget":
		return &rec.DailyBudget
	case "impressions":
		return &rec.Impressions
	case "clicks":
		return &rec.Clicks
	case "conversions":
		return &rec.Conversions
	case "total_cost":
		return &rec.TotalCost
	case "revenue":
		return &rec.Revenue
	case "ctr":
		return &rec.CTR
	case "conversion_rate":
		return &rec.ConversionRate
	case "cpc":
		return &rec.CPC
	case "cpa":
		return &rec.CPA
	default: // "roas" — mappings only carry schema keys
		return &rec.ROAS
	}
}

func parseMeasure(val string) float64 {
	if val == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
