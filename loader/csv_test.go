package loader

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/adlens-io/adlens/engine"
)

// ============================================================================
// LOADER TESTS
// ============================================================================

var campaignCSV = []byte(`campaign_id,platform,campaign_type,target_audience,daily_budget,impressions,clicks,conversions,total_cost,revenue,ctr,conversion_rate,cpc,cpa,roas
CAMP001,Facebook Ads,Search,18-24,100.00,10000,500,25,50.00,100.00,5.00,5.00,0.10,2.00,2.00
CAMP002,Instagram Ads,Display,25-34,120.00,20000,600,30,50.00,400.00,3.00,5.00,0.08,1.67,8.00
CAMP003,TikTok Ads,Video,18-24,150.00,50000,2500,100,200.00,1200.00,5.00,4.00,0.08,2.00,6.00
`)

func TestParse(t *testing.T) {
	ds, err := Parse(campaignCSV)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", ds.Len())
	}

	first := ds.Record(0)
	if first.ID != "CAMP001" || first.Platform != "Facebook Ads" {
		t.Errorf("first record: got %+v", first)
	}
	if first.Revenue != 100 || first.ROAS != 2.0 {
		t.Errorf("first record measures: revenue=%v roas=%v", first.Revenue, first.ROAS)
	}
	if total := engine.SumMeasure(ds, "revenue"); total != 1700 {
		t.Errorf("revenue total: expected 1700, got %v", total)
	}
}

func TestParseHeaderVariants(t *testing.T) {
	// Headers match by normalized key: case and separators don't matter.
	data := []byte("Campaign ID,Platform,Campaign Type,Target Audience,Daily Budget,Impressions,Clicks,Conversions,Total Cost,Revenue,CTR,Conversion Rate,CPC,CPA,ROAS\n" +
		"CAMP001,Facebook Ads,Search,18-24,100,10000,500,25,50,100,5,5,0.1,2,2\n")
	ds, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", ds.Len())
	}
	if rec := ds.Record(0); rec.ID != "CAMP001" || rec.DailyBudget != 100 {
		t.Errorf("record not mapped through normalized headers: %+v", rec)
	}
}

func TestParseMissingCellsBecomeNaN(t *testing.T) {
	data := []byte("campaign_id,platform,roas,revenue\n" +
		"CAMP001,Facebook Ads,,100\n" +
		"CAMP002,,4.0,not-a-number\n")
	ds, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !math.IsNaN(ds.Record(0).ROAS) {
		t.Error("empty numeric cell should parse to NaN")
	}
	if !math.IsNaN(ds.Record(1).Revenue) {
		t.Error("unparseable numeric cell should parse to NaN")
	}
	if ds.Record(1).Platform != "" {
		t.Error("empty dimension cell should stay empty")
	}

	// Quality check sees the injected gaps: 2 absent-column NaNs per record
	// aside, roas has 1 missing and platform has 1 missing.
	summary := engine.QualityCheck(ds)
	for _, fc := range summary.Missing {
		switch fc.Field {
		case "roas", "platform":
			if fc.Count != 1 {
				t.Errorf("%s: expected 1 missing, got %d", fc.Field, fc.Count)
			}
		case "revenue":
			if fc.Count != 1 {
				t.Errorf("revenue: expected 1 missing, got %d", fc.Count)
			}
		}
	}
}

func TestParseSkipsUnknownColumns(t *testing.T) {
	data := []byte("campaign_id,platform,internal_notes,roas\n" +
		"CAMP001,Facebook Ads,ignore me,3.5\n")
	ds, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if rec := ds.Record(0); rec.ROAS != 3.5 {
		t.Errorf("known columns should still map around unknown ones: %+v", rec)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.csv")
	if err := os.WriteFile(path, campaignCSV, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("expected 3 records, got %d", ds.Len())
	}
}
