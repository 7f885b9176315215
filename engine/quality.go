package engine

import (
	"math"

	"github.com/adlens-io/adlens/schema"
)

// ============================================================================
// QUALITY CHECK — Missing-value counts per field
// ============================================================================

// QualityCheck counts missing values per schema field: NaN for measures,
// the empty string for the identifier and dimensions. Never fails — an
// empty dataset simply has zero missing values everywhere.
func QualityCheck(ds *Dataset) *QualitySummary {
	summary := &QualitySummary{}
	for _, f := range schema.Fields() {
		count := 0
		for i := 0; i < ds.Len(); i++ {
			if missingAt(ds, i, f) {
				count++
			}
		}
		summary.Missing = append(summary.Missing, FieldCount{Field: f.Key, Count: count})
		summary.Total += count
	}
	return summary
}

func missingAt(ds *Dataset, i int, f schema.Field) bool {
	if f.Kind == schema.KindMeasure {
		return math.IsNaN(ds.Measure(i, f.Key))
	}
	return ds.Dimension(i, f.Key) == ""
}
