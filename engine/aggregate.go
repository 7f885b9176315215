package engine

import "math"

// ============================================================================
// AGGREGATION — Group by a categorical field, reduce measures per group
// ============================================================================
// Pipeline: validate → group → reduce. Groups keep the first-occurrence
// order of their key in the dataset, so two runs over the same records
// always produce the same table.
// ============================================================================

// AggregateBy groups records by a categorical field and computes the
// requested reduction for each metric per group.
//
// Fails with ErrUnknownField for an unknown group key or metric field.
// An empty dataset yields an empty table, not an error. NaN values (missing
// cells) are skipped by sum and mean, matching how the quality check counts
// them separately.
func AggregateBy(ds *Dataset, groupKey string, metrics []Metric) (*AggregateTable, error) {
	if _, ok := dimensionOf[groupKey]; !ok {
		return nil, unknownField(groupKey)
	}
	for _, m := range metrics {
		if m.Reduce == ReduceCount && m.Field == "" {
			continue // plain row count
		}
		if _, ok := measureOf[m.Field]; !ok {
			return nil, unknownField(m.Field)
		}
	}

	table := &AggregateTable{GroupKey: groupKey, Metrics: metrics}
	if ds.Len() == 0 {
		return table, nil
	}

	// Group: first-occurrence key order.
	grouped := make(map[string][]int)
	order := make([]string, 0)
	for i := 0; i < ds.Len(); i++ {
		key := ds.Dimension(i, groupKey)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	// Reduce.
	table.Rows = make([]AggregateRow, 0, len(order))
	for _, key := range order {
		indices := grouped[key]
		row := AggregateRow{
			Key:    key,
			Count:  len(indices),
			Values: make([]float64, len(metrics)),
		}
		for mi, m := range metrics {
			row.Values[mi] = reduce(ds, indices, m)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// GroupValue labels one reduction result with its group key.
type GroupValue struct {
	Key   string
	Value float64
}

// Column extracts one metric's values across all rows of the table, labeled
// by group key and in table order. ok is false when the metric was not part
// of the AggregateBy call that produced the table.
func (t *AggregateTable) Column(field string, reduce Reduction) ([]GroupValue, bool) {
	slot := -1
	for i, m := range t.Metrics {
		if m.Field == field && m.Reduce == reduce {
			slot = i
			break
		}
	}
	if slot < 0 {
		return nil, false
	}
	out := make([]GroupValue, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, GroupValue{Key: row.Key, Value: row.Values[slot]})
	}
	return out, true
}

func reduce(ds *Dataset, indices []int, m Metric) float64 {
	switch m.Reduce {
	case ReduceCount:
		return float64(len(indices))
	case ReduceSum:
		sum, _ := sumAt(ds, indices, m.Field)
		return sum
	case ReduceMean:
		return meanAt(ds, indices, m.Field)
	default:
		sum, _ := sumAt(ds, indices, m.Field)
		return sum
	}
}

// sumAt sums a measure over the given record indices, skipping NaN.
// Returns the sum and the number of values that contributed.
func sumAt(ds *Dataset, indices []int, field string) (float64, int) {
	var sum float64
	var n int
	for _, i := range indices {
		v := ds.Measure(i, field)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	return sum, n
}

// meanAt averages a measure over the given indices, skipping NaN.
// NaN when no value contributed.
func meanAt(ds *Dataset, indices []int, field string) float64 {
	sum, n := sumAt(ds, indices, field)
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// SumMeasure sums a measure across the whole dataset, skipping NaN.
func SumMeasure(ds *Dataset, field string) float64 {
	var sum float64
	for i := 0; i < ds.Len(); i++ {
		v := ds.Measure(i, field)
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// MeanMeasure averages a measure across the whole dataset, skipping NaN.
// NaN for an empty or all-missing column.
func MeanMeasure(ds *Dataset, field string) float64 {
	var sum float64
	var n int
	for i := 0; i < ds.Len(); i++ {
		v := ds.Measure(i, field)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
