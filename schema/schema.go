package schema

import "strings"

// ============================================================================
// SCHEMA — Fixed column set of the campaign dataset
// ============================================================================
// The campaign CSV always carries the same columns, so there is no runtime
// discovery: the registry below is the single source of truth for field keys,
// display labels, and field kinds. The loader maps CSV headers through it,
// the engine validates group/metric names against it, and the report uses it
// for the column listing and data-type sections.
// ============================================================================

// Kind classifies a dataset field.
type Kind string

const (
	KindID        Kind = "id"        // unique row identifier, never aggregated
	KindDimension Kind = "dimension" // categorical, groupable
	KindMeasure   Kind = "measure"   // numeric, reducible
)

// Field describes one column of the campaign dataset.
type Field struct {
	Key   string // canonical snake_case key, matches the CSV header
	Label string // human-readable label for report output
	Kind  Kind
}

// fields lists every column in CSV order. Ratio measures (ctr through roas)
// are pre-computed by whatever produced the CSV — the engine never derives
// them per record.
var fields = []Field{
	{Key: "campaign_id", Label: "Campaign", Kind: KindID},
	{Key: "platform", Label: "Platform", Kind: KindDimension},
	{Key: "campaign_type", Label: "Campaign Type", Kind: KindDimension},
	{Key: "target_audience", Label: "Target Audience", Kind: KindDimension},
	{Key: "daily_budget", Label: "Daily Budget", Kind: KindMeasure},
	{Key: "impressions", Label: "Impressions", Kind: KindMeasure},
	{Key: "clicks", Label: "Clicks", Kind: KindMeasure},
	{Key: "conversions", Label: "Conversions", Kind: KindMeasure},
	{Key: "total_cost", Label: "Total Cost", Kind: KindMeasure},
	{Key: "revenue", Label: "Revenue", Kind: KindMeasure},
	{Key: "ctr", Label: "CTR", Kind: KindMeasure},
	{Key: "conversion_rate", Label: "Conversion Rate", Kind: KindMeasure},
	{Key: "cpc", Label: "CPC", Kind: KindMeasure},
	{Key: "cpa", Label: "CPA", Kind: KindMeasure},
	{Key: "roas", Label: "ROAS", Kind: KindMeasure},
}

var byKey = func() map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Key] = f
	}
	return m
}()

// Fields returns every dataset field in CSV column order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field for a canonical key.
func Lookup(key string) (Field, bool) {
	f, ok := byKey[key]
	return f, ok
}

// Keys returns all field keys in column order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// DimensionKeys returns the groupable categorical field keys.
func DimensionKeys() []string {
	var keys []string
	for _, f := range fields {
		if f.Kind == KindDimension {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// MeasureKeys returns the numeric field keys in column order.
func MeasureKeys() []string {
	var keys []string
	for _, f := range fields {
		if f.Kind == KindMeasure {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Normalize converts a raw CSV header to its canonical key form.
// "Daily Budget" → "daily_budget".
func Normalize(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
