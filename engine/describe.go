package engine

import (
	"math"
	"sort"

	"github.com/adlens-io/adlens/schema"
)

// ============================================================================
// DESCRIBE — Summary statistics for every measure field
// ============================================================================

// FieldStats holds the descriptive statistics of one measure field.
// Missing values are excluded; Count is the number that remained. Std is the
// sample standard deviation and is NaN when fewer than two values exist.
type FieldStats struct {
	Field string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// DescribeTable lists per-measure statistics in schema column order.
type DescribeTable struct {
	Stats []FieldStats
}

// Describe computes summary statistics for every measure field. An empty
// dataset yields zero counts and NaN statistics, not an error.
func Describe(ds *Dataset) *DescribeTable {
	table := &DescribeTable{}
	for _, key := range schema.MeasureKeys() {
		table.Stats = append(table.Stats, describeField(ds, key))
	}
	return table
}

func describeField(ds *Dataset, field string) FieldStats {
	values := make([]float64, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		v := ds.Measure(i, field)
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	sort.Float64s(values)

	stats := FieldStats{Field: field, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		stats.Mean, stats.Std = nan, nan
		stats.Min, stats.P25, stats.P50, stats.P75, stats.Max = nan, nan, nan, nan, nan
		return stats
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	stats.Mean = sum / float64(len(values))
	stats.Std = sampleStd(values, stats.Mean)
	stats.Min = values[0]
	stats.Max = values[len(values)-1]
	stats.P25 = percentile(values, 0.25)
	stats.P50 = percentile(values, 0.50)
	stats.P75 = percentile(values, 0.75)
	return stats
}

func sampleStd(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// percentile interpolates linearly between the closest ranks of an already
// sorted slice.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
