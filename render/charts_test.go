package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adlens-io/adlens/engine"
	"github.com/adlens-io/adlens/report"
)

// ============================================================================
// RENDERER TESTS
// ============================================================================

func testReport(t *testing.T) *report.Report {
	t.Helper()
	ds := engine.NewDataset([]engine.CampaignRecord{
		{ID: "CAMP001", Platform: "Facebook Ads", CampaignType: "Search", TargetAudience: "18-24",
			DailyBudget: 100, Impressions: 10000, Clicks: 500, Conversions: 25,
			TotalCost: 50, Revenue: 100, CTR: 5.0, ConversionRate: 5.0, CPC: 0.10, CPA: 2.0, ROAS: 2.0},
		{ID: "CAMP002", Platform: "Instagram Ads", CampaignType: "Display", TargetAudience: "25-34",
			DailyBudget: 120, Impressions: 20000, Clicks: 600, Conversions: 30,
			TotalCost: 50, Revenue: 400, CTR: 3.0, ConversionRate: 5.0, CPC: 0.08, CPA: 1.67, ROAS: 8.0},
		{ID: "CAMP003", Platform: "TikTok Ads", CampaignType: "Video", TargetAudience: "18-24",
			DailyBudget: 150, Impressions: 50000, Clicks: 2500, Conversions: 100,
			TotalCost: 200, Revenue: 1200, CTR: 5.0, ConversionRate: 4.0, CPC: 0.08, CPA: 2.0, ROAS: 6.0},
	})
	rep, err := report.Generate(ds, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return rep
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, DefaultStyle())

	files, err := r.RenderAll(testReport(t))
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected chart files to be written")
	}

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing chart file %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart file %s is empty", path)
		}
		if filepath.Ext(path) != ".png" {
			t.Errorf("chart file %s is not a PNG", path)
		}
	}

	// All three sets contribute.
	prefixes := map[string]bool{}
	for _, path := range files {
		name := filepath.Base(path)
		for _, p := range []string{"overview_", "kpi_", "campaigns_"} {
			if len(name) >= len(p) && name[:len(p)] == p {
				prefixes[p] = true
			}
		}
	}
	for _, p := range []string{"overview_", "kpi_", "campaigns_"} {
		if !prefixes[p] {
			t.Errorf("no charts from set %q", p)
		}
	}
}

func TestKPIChartsSkippedWithoutKPIs(t *testing.T) {
	rep, err := report.Generate(engine.NewDataset(nil), 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	r := New(t.TempDir(), DefaultStyle())
	files, err := r.KPICharts(rep)
	if err != nil {
		t.Fatalf("KPICharts failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no KPI charts for an empty dataset, got %d", len(files))
	}
}
