package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/adlens-io/adlens/engine"
	"github.com/adlens-io/adlens/report"
)

// ============================================================================
// CHART RENDERER — Aggregates → PNG files
// ============================================================================
// Three chart sets mirror the report sections: an overview of the grouped
// aggregates, one chart per KPI, and per-campaign comparisons. The renderer
// only consumes already-computed, stable-ordered engine results — it never
// recomputes anything.
// ============================================================================

// Renderer writes chart PNGs into an output directory.
type Renderer struct {
	outDir string
	style  Style
}

// New creates a renderer for the given output directory.
func New(outDir string, style Style) *Renderer {
	return &Renderer{outDir: outDir, style: style}
}

// RenderAll draws every chart set and returns the written file paths.
// The KPI set is skipped when the report has no KPI record.
func (r *Renderer) RenderAll(rep *report.Report) ([]string, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	for _, set := range []func(*report.Report) ([]string, error){
		r.Overview, r.KPICharts, r.CampaignCharts,
	} {
		paths, err := set(rep)
		if err != nil {
			return files, err
		}
		files = append(files, paths...)
	}
	return files, nil
}

// ============================================================================
// SET 1: OVERVIEW — grouped aggregates
// ============================================================================

// Overview renders the six aggregate charts: ROAS and revenue by platform,
// conversions by campaign type, ROAS by audience, revenue vs cost for the
// top revenue campaigns, and impressions vs clicks by platform.
func (r *Renderer) Overview(rep *report.Report) ([]string, error) {
	var files []string

	roasPlatform, _ := rep.ByPlatform.Column("roas", engine.ReduceMean)
	path, err := r.barChart("overview_roas_by_platform.png", "Mean ROAS by Platform",
		sortDesc(roasPlatform), r.roasBarColors(roasPlatform))
	if err != nil {
		return files, err
	}
	files = appendFile(files, path)

	revenuePlatform, _ := rep.ByPlatform.Column("revenue", engine.ReduceSum)
	path, err = r.barChart("overview_revenue_by_platform.png", "Revenue by Platform",
		sortDesc(revenuePlatform), nil)
	if err != nil {
		return files, err
	}
	files = appendFile(files, path)

	conversionsType, _ := rep.ByType.Column("conversions", engine.ReduceSum)
	path, err = r.pieChart("overview_conversions_by_type.png",
		"Conversions by Campaign Type", sortDesc(conversionsType))
	if err != nil {
		return files, err
	}
	files = appendFile(files, path)

	roasAudience, _ := rep.ByAudience.Column("roas", engine.ReduceMean)
	path, err = r.barChart("overview_roas_by_audience.png", "Mean ROAS by Audience",
		sortDesc(roasAudience), r.roasBarColors(roasAudience))
	if err != nil {
		return files, err
	}
	files = appendFile(files, path)

	path, err = r.revenueVsCost(rep)
	if err != nil {
		return files, err
	}
	files = appendFile(files, path)

	path, err = r.impressionsVsClicks(rep)
	if err != nil {
		return files, err
	}
	return appendFile(files, path), nil
}

// revenueVsCost draws paired revenue/cost bars for the six highest-revenue
// campaigns.
func (r *Renderer) revenueVsCost(rep *report.Report) (string, error) {
	top, err := engine.TopN(rep.Dataset, "revenue", 6, engine.Top)
	if err != nil {
		return "", err
	}

	bars := make([]chart.Value, 0, len(top)*2)
	for _, rec := range top {
		bars = append(bars,
			chart.Value{Label: rec.ID + " rev", Value: safeValue(rec.Revenue), Style: chart.Style{FillColor: colorRevenue, StrokeColor: colorRevenue}},
			chart.Value{Label: rec.ID + " cost", Value: safeValue(rec.TotalCost), Style: chart.Style{FillColor: colorCost, StrokeColor: colorCost}},
		)
	}
	return r.writeBarChart("overview_revenue_vs_cost.png", "Top Campaigns: Revenue vs Cost", bars)
}

// impressionsVsClicks draws paired impression/click bars per platform.
func (r *Renderer) impressionsVsClicks(rep *report.Report) (string, error) {
	impressions, _ := rep.ByPlatform.Column("impressions", engine.ReduceSum)
	clicks, _ := rep.ByPlatform.Column("clicks", engine.ReduceSum)

	clicksByKey := make(map[string]float64, len(clicks))
	for _, gv := range clicks {
		clicksByKey[gv.Key] = gv.Value
	}

	bars := make([]chart.Value, 0, len(impressions)*2)
	for i, gv := range impressions {
		c := seriesColor(i)
		bars = append(bars,
			chart.Value{Label: gv.Key + " impr", Value: safeValue(gv.Value), Style: chart.Style{FillColor: c, StrokeColor: c}},
			chart.Value{Label: gv.Key + " clicks", Value: safeValue(clicksByKey[gv.Key]), Style: chart.Style{FillColor: c.WithAlpha(128), StrokeColor: c}},
		)
	}
	return r.writeBarChart("overview_impressions_vs_clicks.png", "Impressions vs Clicks by Platform", bars)
}

// ============================================================================
// SET 2: KPI CHARTS — one bar per indicator
// ============================================================================

// KPICharts renders one single-bar chart per KPI. Nothing is rendered when
// the KPI record is unavailable (empty dataset).
func (r *Renderer) KPICharts(rep *report.Report) ([]string, error) {
	if rep.KPIs == nil {
		return nil, nil
	}
	k := rep.KPIs

	kpis := []struct {
		file  string
		title string
		value float64
		ok    bool // rendered in the healthy color
	}{
		{"kpi_roas.png", fmt.Sprintf("Mean ROAS: %.2fx", k.ROAS), k.ROAS, k.ROAS > r.style.ROASTarget},
		{"kpi_ctr.png", fmt.Sprintf("Mean CTR: %.2f%%", k.CTR), k.CTR, true},
		{"kpi_conversion_rate.png", fmt.Sprintf("Mean Conversion Rate: %.2f%%", k.ConversionRate), k.ConversionRate, true},
		{"kpi_cpc.png", fmt.Sprintf("Mean CPC: $%.2f", k.CPC), k.CPC, true},
		{"kpi_cpa.png", fmt.Sprintf("Mean CPA: $%.2f", k.CPA), k.CPA, true},
	}
	if rep.Advice != nil && rep.Advice.Margin != nil {
		kpis = append(kpis, struct {
			file  string
			title string
			value float64
			ok    bool
		}{"kpi_margin.png", fmt.Sprintf("Profit Margin: %.1f%%", rep.Advice.Margin.Percent), rep.Advice.Margin.Percent, rep.Advice.Margin.Percent > 0})
	}

	var files []string
	for _, kpi := range kpis {
		color := colorHealthy
		if !kpi.ok {
			color = colorAlert
		}
		bars := []chart.Value{{
			Label: "",
			Value: safeValue(kpi.value),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}}
		path, err := r.writeBarChart(kpi.file, kpi.title, bars)
		if err != nil {
			return files, err
		}
		files = appendFile(files, path)
	}
	return files, nil
}

// ============================================================================
// SET 3: CAMPAIGN CHARTS — per-campaign comparisons
// ============================================================================

// CampaignCharts renders the per-campaign set: sorted ROAS bars, the cost vs
// revenue scatter with a break-even line, and conversions and CTR bars.
func (r *Renderer) CampaignCharts(rep *report.Report) ([]string, error) {
	var files []string

	for _, def := range []struct {
		file   string
		title  string
		metric string
		roas   bool
	}{
		{"campaigns_roas.png", "ROAS per Campaign", "roas", true},
		{"campaigns_conversions.png", "Conversions per Campaign", "conversions", false},
		{"campaigns_ctr.png", "CTR per Campaign", "ctr", false},
	} {
		ranked, err := engine.TopN(rep.Dataset, def.metric, rep.Dataset.Len(), engine.Top)
		if err != nil {
			return files, err
		}
		bars := make([]chart.Value, 0, len(ranked))
		for i, rec := range ranked {
			value := recordMeasure(rec, def.metric)
			c := seriesColor(i)
			if def.roas {
				c = colorAlert
				if value > r.style.ROASTarget {
					c = colorHealthy
				}
			}
			bars = append(bars, chart.Value{
				Label: rec.ID,
				Value: safeValue(value),
				Style: chart.Style{FillColor: c, StrokeColor: c},
			})
		}
		path, err := r.writeBarChart(def.file, def.title, bars)
		if err != nil {
			return files, err
		}
		files = appendFile(files, path)
	}

	path, err := r.costVsRevenueScatter(rep)
	if err != nil {
		return files, err
	}
	return appendFile(files, path), nil
}

// costVsRevenueScatter plots every campaign as a point with a dashed
// break-even diagonal.
func (r *Renderer) costVsRevenueScatter(rep *report.Report) (string, error) {
	ds := rep.Dataset
	xs := make([]float64, 0, ds.Len())
	ys := make([]float64, 0, ds.Len())
	var maxCost float64
	for i := 0; i < ds.Len(); i++ {
		cost := ds.Measure(i, "total_cost")
		revenue := ds.Measure(i, "revenue")
		if math.IsNaN(cost) || math.IsNaN(revenue) {
			continue
		}
		xs = append(xs, cost)
		ys = append(ys, revenue)
		if cost > maxCost {
			maxCost = cost
		}
	}

	if len(xs) == 0 {
		return "", nil
	}
	graph := chart.Chart{
		Title:  "Cost vs Revenue per Campaign",
		Width:  r.style.Width,
		Height: r.style.Height,
		XAxis:  chart.XAxis{Name: "Total Cost"},
		YAxis:  chart.YAxis{Name: "Revenue"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Campaigns",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    colorRevenue,
				},
			},
			chart.ContinuousSeries{
				Name:    "Break-even",
				XValues: []float64{0, maxCost},
				YValues: []float64{0, maxCost},
				Style: chart.Style{
					StrokeColor:     colorCost,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}

	return r.writeFile("campaigns_cost_vs_revenue.png", func(w io.Writer) error {
		return graph.Render(chart.PNG, w)
	})
}

// ============================================================================
// CHART PRIMITIVES
// ============================================================================

func (r *Renderer) barChart(file, title string, values []engine.GroupValue, colors []chart.Style) (string, error) {
	bars := make([]chart.Value, 0, len(values))
	for i, gv := range values {
		style := chart.Style{FillColor: seriesColor(0), StrokeColor: seriesColor(0)}
		if colors != nil {
			style = colors[i]
		}
		bars = append(bars, chart.Value{Label: gv.Key, Value: safeValue(gv.Value), Style: style})
	}
	return r.writeBarChart(file, title, bars)
}

func (r *Renderer) writeBarChart(file, title string, bars []chart.Value) (string, error) {
	if len(bars) == 0 {
		return "", nil // nothing to draw
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    r.style.Width,
		Height:   r.style.Height,
		BarWidth: r.style.BarWidth,
		Bars:     bars,
	}
	return r.writeFile(file, func(w io.Writer) error {
		return graph.Render(chart.PNG, w)
	})
}

func (r *Renderer) pieChart(file, title string, values []engine.GroupValue) (string, error) {
	slices := make([]chart.Value, 0, len(values))
	for _, gv := range values {
		if math.IsNaN(gv.Value) || gv.Value <= 0 {
			continue // pie slices must be positive
		}
		slices = append(slices, chart.Value{Label: gv.Key, Value: gv.Value})
	}
	if len(slices) == 0 {
		return "", nil
	}
	graph := chart.PieChart{
		Title:  title,
		Width:  r.style.Width,
		Height: r.style.Height,
		Values: slices,
	}
	return r.writeFile(file, func(w io.Writer) error {
		return graph.Render(chart.PNG, w)
	})
}

func (r *Renderer) writeFile(name string, render func(io.Writer) error) (string, error) {
	path := filepath.Join(r.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return path, nil
}

// roasBarColors colors each bar by the ROAS target: healthy above, alert at
// or below, matching the strict threshold of the recommendation flags.
func (r *Renderer) roasBarColors(values []engine.GroupValue) []chart.Style {
	sorted := sortDesc(values)
	styles := make([]chart.Style, len(sorted))
	for i, gv := range sorted {
		c := colorAlert
		if gv.Value > r.style.ROASTarget {
			c = colorHealthy
		}
		styles[i] = chart.Style{FillColor: c, StrokeColor: c}
	}
	return styles
}

// sortDesc returns a copy ordered by value descending, NaN last; ties keep
// the aggregate table's group order.
func sortDesc(values []engine.GroupValue) []engine.GroupValue {
	out := make([]engine.GroupValue, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value, out[j].Value
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
	return out
}

// appendFile skips the empty path returned for charts with nothing to draw.
func appendFile(files []string, path string) []string {
	if path == "" {
		return files
	}
	return append(files, path)
}

func safeValue(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func recordMeasure(rec engine.CampaignRecord, metric string) float64 {
	switch metric {
	case "roas":
		return rec.ROAS
	case "conversions":
		return rec.Conversions
	case "ctr":
		return rec.CTR
	case "revenue":
		return rec.Revenue
	case "total_cost":
		return rec.TotalCost
	default:
		return math.NaN()
	}
}
