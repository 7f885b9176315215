package engine

import (
	"math"
	"sort"
)

// ============================================================================
// RANKING — Top/bottom campaigns by a measure
// ============================================================================

// Direction selects the end of the ranking.
type Direction string

const (
	Top    Direction = "top"    // highest values first
	Bottom Direction = "bottom" // lowest values first
)

// TopN returns the n records ranked by a measure, descending for Top and
// ascending for Bottom. The sort is stable: ties keep input order, so the
// result is deterministic. Records with a missing value for the measure
// rank last in either direction.
//
// Fails with ErrUnknownField for an unknown measure. n <= 0 yields an empty
// slice, not an error; n beyond the dataset length is clamped.
func TopN(ds *Dataset, metric string, n int, dir Direction) ([]CampaignRecord, error) {
	if _, ok := measureOf[metric]; !ok {
		return nil, unknownField(metric)
	}
	if n <= 0 || ds.Len() == 0 {
		return []CampaignRecord{}, nil
	}

	indices := make([]int, ds.Len())
	for i := range indices {
		indices[i] = i
	}

	less := func(a, b float64) bool {
		// NaN sorts last regardless of direction.
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		if dir == Bottom {
			return a < b
		}
		return a > b
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return less(ds.Measure(indices[i], metric), ds.Measure(indices[j], metric))
	})

	if n > len(indices) {
		n = len(indices)
	}
	out := make([]CampaignRecord, 0, n)
	for _, idx := range indices[:n] {
		out = append(out, ds.Record(idx))
	}
	return out, nil
}
