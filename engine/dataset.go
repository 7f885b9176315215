package engine

// ============================================================================
// DATASET — Indexed, read-only access to campaign records
// ============================================================================
// The engine never copies consumer data. A Dataset wraps the loaded record
// slice and reads fields through accessor functions registered per schema
// key — the same value a report sees twice is the same value in memory.
// Callers must not mutate the backing slice during a report run.
// ============================================================================

// Dataset is an ordered, immutable view over campaign records.
type Dataset struct {
	records []CampaignRecord
}

// NewDataset wraps a record slice. Zero-copy — holds the reference.
func NewDataset(records []CampaignRecord) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the record at index i.
func (d *Dataset) Record(i int) CampaignRecord { return d.records[i] }

// Dimension reads a categorical field by schema key. Returns "" for an
// out-of-range index; key validity is the caller's concern (operations
// validate keys up front and fail with ErrUnknownField).
func (d *Dataset) Dimension(i int, key string) string {
	if i < 0 || i >= len(d.records) {
		return ""
	}
	if fn, ok := dimensionOf[key]; ok {
		return fn(d.records[i])
	}
	return ""
}

// Measure reads a numeric field by schema key. Returns 0 for an
// out-of-range index or unknown key.
func (d *Dataset) Measure(i int, key string) float64 {
	if i < 0 || i >= len(d.records) {
		return 0
	}
	if fn, ok := measureOf[key]; ok {
		return fn(d.records[i])
	}
	return 0
}

// ============================================================================
// FIELD ACCESSORS
// ============================================================================
// One accessor per schema field, declared once. Keys mirror schema.Fields().

var dimensionOf = map[string]func(CampaignRecord) string{
	"campaign_id":     func(r CampaignRecord) string { return r.ID },
	"platform":        func(r CampaignRecord) string { return r.Platform },
	"campaign_type":   func(r CampaignRecord) string { return r.CampaignType },
	"target_audience": func(r CampaignRecord) string { return r.TargetAudience },
}

var measureOf = map[string]func(CampaignRecord) float64{
	"daily_budget":    func(r CampaignRecord) float64 { return r.DailyBudget },
	"impressions":     func(r CampaignRecord) float64 { return r.Impressions },
	"clicks":          func(r CampaignRecord) float64 { return r.Clicks },
	"conversions":     func(r CampaignRecord) float64 { return r.Conversions },
	"total_cost":      func(r CampaignRecord) float64 { return r.TotalCost },
	"revenue":         func(r CampaignRecord) float64 { return r.Revenue },
	"ctr":             func(r CampaignRecord) float64 { return r.CTR },
	"conversion_rate": func(r CampaignRecord) float64 { return r.ConversionRate },
	"cpc":             func(r CampaignRecord) float64 { return r.CPC },
	"cpa":             func(r CampaignRecord) float64 { return r.CPA },
	"roas":            func(r CampaignRecord) float64 { return r.ROAS },
}
