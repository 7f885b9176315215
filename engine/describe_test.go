package engine

import (
	"math"
	"testing"
)

// ============================================================================
// DESCRIBE TESTS
// ============================================================================

func statsFor(t *testing.T, table *DescribeTable, field string) FieldStats {
	t.Helper()
	for _, s := range table.Stats {
		if s.Field == field {
			return s
		}
	}
	t.Fatalf("field %s not in describe table", field)
	return FieldStats{}
}

func TestDescribeKnownVector(t *testing.T) {
	// revenue column: 10, 20, 30, 40 — hand-checked statistics.
	records := []CampaignRecord{
		{ID: "C001", Revenue: 10},
		{ID: "C002", Revenue: 20},
		{ID: "C003", Revenue: 30},
		{ID: "C004", Revenue: 40},
	}
	table := Describe(NewDataset(records))
	s := statsFor(t, table, "revenue")

	if s.Count != 4 {
		t.Errorf("count: expected 4, got %d", s.Count)
	}
	if s.Mean != 25 {
		t.Errorf("mean: expected 25, got %v", s.Mean)
	}
	// Sample std of {10,20,30,40}: sqrt(500/3)
	if want := math.Sqrt(500.0 / 3.0); math.Abs(s.Std-want) > 1e-9 {
		t.Errorf("std: expected %v, got %v", want, s.Std)
	}
	if s.Min != 10 || s.Max != 40 {
		t.Errorf("min/max: expected 10/40, got %v/%v", s.Min, s.Max)
	}
	// Linear interpolation between closest ranks.
	if s.P25 != 17.5 || s.P50 != 25 || s.P75 != 32.5 {
		t.Errorf("quartiles: expected 17.5/25/32.5, got %v/%v/%v", s.P25, s.P50, s.P75)
	}
}

func TestDescribeSkipsMissing(t *testing.T) {
	records := []CampaignRecord{
		{ID: "C001", Revenue: 10},
		{ID: "C002", Revenue: math.NaN()},
		{ID: "C003", Revenue: 30},
	}
	s := statsFor(t, Describe(NewDataset(records)), "revenue")
	if s.Count != 2 {
		t.Errorf("count: expected 2 present values, got %d", s.Count)
	}
	if s.Mean != 20 {
		t.Errorf("mean: expected 20, got %v", s.Mean)
	}
}

func TestDescribeSingleValue(t *testing.T) {
	s := statsFor(t, Describe(NewDataset([]CampaignRecord{{ID: "C001", Revenue: 42}})), "revenue")
	if s.Count != 1 || s.Mean != 42 || s.Min != 42 || s.Max != 42 || s.P50 != 42 {
		t.Errorf("single value stats wrong: %+v", s)
	}
	if !math.IsNaN(s.Std) {
		t.Errorf("std of one value should be NaN, got %v", s.Std)
	}
}

func TestDescribeEmptyDataset(t *testing.T) {
	table := Describe(NewDataset(nil))
	if len(table.Stats) == 0 {
		t.Fatal("describe should list every measure field")
	}
	for _, s := range table.Stats {
		if s.Count != 0 {
			t.Errorf("field %s: expected count 0, got %d", s.Field, s.Count)
		}
		if !math.IsNaN(s.Mean) {
			t.Errorf("field %s: expected NaN mean, got %v", s.Field, s.Mean)
		}
	}
}

func TestDescribeDeterminism(t *testing.T) {
	ds := NewDataset(sampleRecords())
	a, b := Describe(ds), Describe(ds)
	for i := range a.Stats {
		x, y := a.Stats[i], b.Stats[i]
		if x != y && !(math.IsNaN(x.Std) && math.IsNaN(y.Std)) {
			t.Errorf("field %s: two runs disagree: %+v vs %+v", x.Field, x, y)
		}
	}
}
