package engine

import (
	"errors"
	"math"
	"testing"
)

// ============================================================================
// RECOMMENDATION TESTS
// ============================================================================

func TestRecommendTwoRecordScenario(t *testing.T) {
	ds := NewDataset([]CampaignRecord{
		{ID: "C001", Platform: "A", TargetAudience: "18-24", ROAS: 2.0, Revenue: 100, TotalCost: 50},
		{ID: "C002", Platform: "B", TargetAudience: "25-34", ROAS: 8.0, Revenue: 400, TotalCost: 50},
	})
	kpis, err := ComputeKPIs(ds)
	if err != nil {
		t.Fatalf("ComputeKPIs failed: %v", err)
	}

	rec, err := Recommend(ds, kpis)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.BestPlatform.Name != "B" {
		t.Errorf("best platform: expected B, got %s", rec.BestPlatform.Name)
	}
	if rec.WorstPlatform.Name != "A" {
		t.Errorf("worst platform: expected A, got %s", rec.WorstPlatform.Name)
	}

	// The mean ROAS is exactly 5.0 and the threshold comparison is strict,
	// so the healthy flag must be false.
	if rec.HealthyROAS {
		t.Error("mean ROAS of exactly 5.0 must not be flagged healthy")
	}
}

func TestRecommendThresholdBoundaries(t *testing.T) {
	cases := []struct {
		name        string
		roas        float64
		convRate    float64
		wantHealthy bool
		wantConv    bool
	}{
		{"just above", 5.01, 3.01, true, true},
		{"exactly at", 5.0, 3.0, false, false},
		{"just below", 4.99, 2.99, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ds := NewDataset([]CampaignRecord{
				{ID: "C001", Platform: "A", TargetAudience: "18-24",
					ROAS: c.roas, ConversionRate: c.convRate, Revenue: 100, TotalCost: 50},
			})
			kpis, err := ComputeKPIs(ds)
			if err != nil {
				t.Fatalf("ComputeKPIs failed: %v", err)
			}
			rec, err := Recommend(ds, kpis)
			if err != nil {
				t.Fatalf("Recommend failed: %v", err)
			}
			if rec.HealthyROAS != c.wantHealthy {
				t.Errorf("healthy flag for ROAS %v: expected %v", c.roas, c.wantHealthy)
			}
			if rec.RespectableConvRate != c.wantConv {
				t.Errorf("conversion flag for rate %v: expected %v", c.convRate, c.wantConv)
			}
		})
	}
}

func TestRecommendMargin(t *testing.T) {
	ds := NewDataset([]CampaignRecord{
		{ID: "C001", Platform: "A", TargetAudience: "18-24", ROAS: 2.0, Revenue: 1000, TotalCost: 600},
	})
	kpis, _ := ComputeKPIs(ds)
	rec, err := Recommend(ds, kpis)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.Margin == nil {
		t.Fatal("margin should be defined for non-zero revenue")
	}
	if rec.Margin.NetProfit != 400 || rec.Margin.Percent != 40.0 {
		t.Errorf("expected profit 400 / margin 40.0, got %v / %v", rec.Margin.NetProfit, rec.Margin.Percent)
	}
}

func TestRecommendUndefinedMarginOnZeroRevenue(t *testing.T) {
	ds := NewDataset([]CampaignRecord{
		{ID: "C001", Platform: "A", TargetAudience: "18-24", ROAS: 0, Revenue: 0, TotalCost: 600},
	})
	kpis, _ := ComputeKPIs(ds)
	rec, err := Recommend(ds, kpis)
	if err != nil {
		t.Fatalf("zero revenue must not fail the recommendation: %v", err)
	}
	if rec.Margin != nil {
		t.Errorf("margin should be undefined, got %+v", rec.Margin)
	}
}

func TestRecommendEmptyDataset(t *testing.T) {
	ds := NewDataset(nil)
	if _, err := Recommend(ds, &KPIRecord{}); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestRecommendCustomTargets(t *testing.T) {
	ds := NewDataset([]CampaignRecord{
		{ID: "C001", Platform: "A", TargetAudience: "18-24",
			ROAS: 5.0, ConversionRate: 3.0, Revenue: 100, TotalCost: 50},
	})
	kpis, _ := ComputeKPIs(ds)
	rec, err := Recommend(ds, kpis, WithROASTarget(4), WithConversionTarget(2))
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if !rec.HealthyROAS || !rec.RespectableConvRate {
		t.Error("lowered targets should flip both flags to true")
	}
	if rec.ROASTarget != 4 || rec.ConversionRateTarget != 2 {
		t.Errorf("targets not recorded: got %v / %v", rec.ROASTarget, rec.ConversionRateTarget)
	}
}

func TestRecommendSkipsAllMissingGroup(t *testing.T) {
	// Platform C has no ROAS values at all, so its group mean is NaN.
	// Neither best nor worst may land on it while real means exist.
	ds := NewDataset([]CampaignRecord{
		{ID: "C001", Platform: "A", TargetAudience: "18-24", ROAS: 2.0, Revenue: 100, TotalCost: 50},
		{ID: "C002", Platform: "B", TargetAudience: "25-34", ROAS: 8.0, Revenue: 400, TotalCost: 50},
		{ID: "C003", Platform: "C", TargetAudience: "35-44", ROAS: math.NaN(), Revenue: 200, TotalCost: 50},
	})
	kpis, err := ComputeKPIs(ds)
	if err != nil {
		t.Fatalf("ComputeKPIs failed: %v", err)
	}
	rec, err := Recommend(ds, kpis)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.BestPlatform.Name != "B" {
		t.Errorf("best platform: expected B, got %s", rec.BestPlatform.Name)
	}
	if rec.WorstPlatform.Name != "A" {
		t.Errorf("worst platform: expected A (lowest real mean), got %s", rec.WorstPlatform.Name)
	}
	if rec.WorstAudience.Name != "18-24" {
		t.Errorf("worst audience: expected 18-24, got %s", rec.WorstAudience.Name)
	}
}

func TestRecommendAudienceGroups(t *testing.T) {
	ds := NewDataset(sampleRecords())
	kpis, _ := ComputeKPIs(ds)
	rec, err := Recommend(ds, kpis)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// 18-24: (2+6)/2 = 4.0; 25-34: (8+4+11)/3 ≈ 7.67; 35-44: 1.0
	if rec.BestAudience.Name != "25-34" {
		t.Errorf("best audience: expected 25-34, got %s", rec.BestAudience.Name)
	}
	if rec.WorstAudience.Name != "35-44" {
		t.Errorf("worst audience: expected 35-44, got %s", rec.WorstAudience.Name)
	}
}
