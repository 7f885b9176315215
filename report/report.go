package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/adlens-io/adlens/engine"
	"github.com/adlens-io/adlens/schema"
)

// ============================================================================
// CONSOLE REPORT — Sectioned text output over engine results
// ============================================================================
// Generate runs every engine operation once and keeps the results; Render
// formats them into the numbered sections of the analysis report. Exact
// layout is presentation only — all numbers come straight from the engine.
// ============================================================================

const rulerWidth = 80

// Report holds every computed result of one analysis run.
type Report struct {
	Dataset *engine.Dataset
	TopN    int

	Describe   *engine.DescribeTable
	ByPlatform *engine.AggregateTable
	ByType     *engine.AggregateTable
	ByAudience *engine.AggregateTable
	KPIs       *engine.KPIRecord
	KPIErr     error // ErrEmptyDataset aborts the KPI section only
	Top        []engine.CampaignRecord
	Bottom     []engine.CampaignRecord
	Quality    *engine.QualitySummary
	Advice     *engine.Recommendation
}

// Generate runs the full analysis over a dataset. topN bounds the ranked
// sections. Engine options tune the recommendation thresholds.
//
// An empty dataset is not fatal: the KPI and recommendation sections are
// skipped (KPIErr records why) while the structural sections still render.
func Generate(ds *engine.Dataset, topN int, opts ...engine.Option) (*Report, error) {
	r := &Report{Dataset: ds, TopN: topN}
	r.Describe = engine.Describe(ds)
	r.Quality = engine.QualityCheck(ds)

	var err error
	r.ByPlatform, err = engine.AggregateBy(ds, "platform", []engine.Metric{
		{Reduce: engine.ReduceCount},
		{Field: "daily_budget", Reduce: engine.ReduceSum},
		{Field: "impressions", Reduce: engine.ReduceSum},
		{Field: "clicks", Reduce: engine.ReduceSum},
		{Field: "conversions", Reduce: engine.ReduceSum},
		{Field: "total_cost", Reduce: engine.ReduceSum},
		{Field: "revenue", Reduce: engine.ReduceSum},
		{Field: "roas", Reduce: engine.ReduceMean},
	})
	if err != nil {
		return nil, err
	}

	r.ByType, err = engine.AggregateBy(ds, "campaign_type", []engine.Metric{
		{Reduce: engine.ReduceCount},
		{Field: "clicks", Reduce: engine.ReduceSum},
		{Field: "conversions", Reduce: engine.ReduceSum},
		{Field: "conversion_rate", Reduce: engine.ReduceMean},
		{Field: "roas", Reduce: engine.ReduceMean},
	})
	if err != nil {
		return nil, err
	}

	r.ByAudience, err = engine.AggregateBy(ds, "target_audience", []engine.Metric{
		{Reduce: engine.ReduceCount},
		{Field: "conversions", Reduce: engine.ReduceSum},
		{Field: "total_cost", Reduce: engine.ReduceSum},
		{Field: "revenue", Reduce: engine.ReduceSum},
		{Field: "roas", Reduce: engine.ReduceMean},
	})
	if err != nil {
		return nil, err
	}

	r.Top, err = engine.TopN(ds, "roas", topN, engine.Top)
	if err != nil {
		return nil, err
	}
	r.Bottom, err = engine.TopN(ds, "roas", topN, engine.Bottom)
	if err != nil {
		return nil, err
	}

	r.KPIs, r.KPIErr = engine.ComputeKPIs(ds)
	if r.KPIErr != nil && !errors.Is(r.KPIErr, engine.ErrEmptyDataset) {
		return nil, r.KPIErr
	}
	if r.KPIs != nil {
		r.Advice, err = engine.Recommend(ds, r.KPIs, opts...)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render writes the full sectioned report.
func (r *Report) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	r.renderGeneral(bw)
	r.renderDataTypes(bw)
	r.renderDescribe(bw)
	r.renderAggregate(bw, "4. ANALYSIS BY PLATFORM", r.ByPlatform, platformColumns)
	r.renderAggregate(bw, "5. ANALYSIS BY CAMPAIGN TYPE", r.ByType, typeColumns)
	r.renderAggregate(bw, "6. ANALYSIS BY TARGET AUDIENCE", r.ByAudience, audienceColumns)
	r.renderKPIs(bw)
	r.renderRanking(bw, fmt.Sprintf("8. TOP %d CAMPAIGNS BY ROAS", r.TopN), r.Top)
	r.renderRanking(bw, fmt.Sprintf("9. BOTTOM %d CAMPAIGNS BY ROAS", r.TopN), r.Bottom)
	r.renderQuality(bw)
	r.renderAdvice(bw)

	return bw.Flush()
}

func section(w io.Writer, title string) {
	ruler := strings.Repeat("=", rulerWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", ruler, title, ruler)
}

// ============================================================================
// SECTIONS 1–3: STRUCTURE AND STATISTICS
// ============================================================================

func (r *Report) renderGeneral(w io.Writer) {
	section(w, "1. GENERAL DATASET INFORMATION")
	fields := schema.Fields()
	fmt.Fprintf(w, "Total records: %d\n", r.Dataset.Len())
	fmt.Fprintf(w, "Total columns: %d\n\n", len(fields))
	fmt.Fprintln(w, "Dataset columns:")
	for i, f := range fields {
		fmt.Fprintf(w, "  %d. %s\n", i+1, f.Key)
	}
}

func (r *Report) renderDataTypes(w io.Writer) {
	section(w, "2. DATA TYPES")
	t := &Table{Columns: []Column{
		{Label: "Column", Align: AlignLeft},
		{Label: "Type", Align: AlignLeft},
	}}
	for _, f := range schema.Fields() {
		kind := "string"
		if f.Kind == schema.KindMeasure {
			kind = "float64"
		}
		t.AddRow(f.Key, kind)
	}
	t.Render(w)
}

func (r *Report) renderDescribe(w io.Writer) {
	section(w, "3. STATISTICAL SUMMARY")
	t := &Table{Columns: []Column{
		{Label: "Column", Align: AlignLeft},
		{Label: "Count", Align: AlignRight},
		{Label: "Mean", Align: AlignRight},
		{Label: "Std", Align: AlignRight},
		{Label: "Min", Align: AlignRight},
		{Label: "25%", Align: AlignRight},
		{Label: "50%", Align: AlignRight},
		{Label: "75%", Align: AlignRight},
		{Label: "Max", Align: AlignRight},
	}}
	for _, s := range r.Describe.Stats {
		t.AddRow(s.Field, FormatInt(s.Count),
			FormatFloat(s.Mean), FormatFloat(s.Std), FormatFloat(s.Min),
			FormatFloat(s.P25), FormatFloat(s.P50), FormatFloat(s.P75), FormatFloat(s.Max))
	}
	t.Render(w)
}

// ============================================================================
// SECTIONS 4–6: AGGREGATE TABLES
// ============================================================================

// aggregateColumn maps one metric slot to a header label and formatter.
type aggregateColumn struct {
	label  string
	format func(float64) string
}

var platformColumns = []aggregateColumn{
	{"Campaigns", fmtWhole},
	{"Total Budget", FormatMoney},
	{"Impressions", fmtWhole},
	{"Clicks", fmtWhole},
	{"Conversions", fmtWhole},
	{"Total Cost", FormatMoney},
	{"Revenue", FormatMoney},
	{"Avg ROAS", FormatMultiple},
}

var typeColumns = []aggregateColumn{
	{"Campaigns", fmtWhole},
	{"Total Clicks", fmtWhole},
	{"Conversions", fmtWhole},
	{"Avg Conv. Rate", FormatPercent},
	{"Avg ROAS", FormatMultiple},
}

var audienceColumns = []aggregateColumn{
	{"Campaigns", fmtWhole},
	{"Conversions", fmtWhole},
	{"Cost", FormatMoney},
	{"Revenue", FormatMoney},
	{"Avg ROAS", FormatMultiple},
}

func (r *Report) renderAggregate(w io.Writer, title string, table *engine.AggregateTable, cols []aggregateColumn) {
	section(w, title)
	if len(table.Rows) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}

	groupLabel := table.GroupKey
	if f, ok := schema.Lookup(table.GroupKey); ok {
		groupLabel = f.Label
	}
	t := &Table{Columns: []Column{{Label: groupLabel, Align: AlignLeft}}}
	for _, c := range cols {
		t.Columns = append(t.Columns, Column{Label: c.label, Align: AlignRight})
	}

	for _, row := range table.Rows {
		cells := []string{row.Key}
		for i, c := range cols {
			cells = append(cells, c.format(row.Values[i]))
		}
		t.AddRow(cells...)
	}
	t.Render(w)
}

// fmtWhole renders a sum or count as a comma-grouped whole number.
func fmtWhole(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return FormatInt(int(math.Round(v)))
}

// ============================================================================
// SECTION 7: KPIs
// ============================================================================

func (r *Report) renderKPIs(w io.Writer) {
	section(w, "7. KEY PERFORMANCE INDICATORS (KPIs)")
	if r.KPIs == nil {
		fmt.Fprintf(w, "[ERROR] KPIs unavailable: %v\n", r.KPIErr)
		return
	}
	k := r.KPIs
	fmt.Fprintf(w, "CTR (Click-Through Rate) Mean:        %s\n", FormatPercent(k.CTR))
	fmt.Fprintf(w, "Conversion Rate Mean:                 %s\n", FormatPercent(k.ConversionRate))
	fmt.Fprintf(w, "CPC (Cost per Click) Mean:            %s\n", FormatMoney(k.CPC))
	fmt.Fprintf(w, "CPA (Cost per Acquisition) Mean:      %s\n", FormatMoney(k.CPA))
	fmt.Fprintf(w, "ROAS (Return on Ad Spend) Mean:       %s\n", FormatMultiple(k.ROAS))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Budget Invested:                %s\n", FormatMoney(k.BudgetTotal))
	fmt.Fprintf(w, "Total Actual Cost:                    %s\n", FormatMoney(k.CostTotal))
	fmt.Fprintf(w, "Revenue Generated:                    %s\n", FormatMoney(k.RevenueTotal))
	fmt.Fprintf(w, "Net Profit:                           %s\n", FormatMoney(k.NetProfit))
}

// ============================================================================
// SECTIONS 8–9: RANKED CAMPAIGNS
// ============================================================================

func (r *Report) renderRanking(w io.Writer, title string, records []engine.CampaignRecord) {
	section(w, title)
	if len(records) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}
	t := &Table{Columns: []Column{
		{Label: "Campaign", Align: AlignLeft},
		{Label: "Platform", Align: AlignLeft},
		{Label: "Type", Align: AlignLeft},
		{Label: "ROAS", Align: AlignRight},
		{Label: "Revenue", Align: AlignRight},
		{Label: "Cost", Align: AlignRight},
	}}
	for _, rec := range records {
		t.AddRow(rec.ID, rec.Platform, rec.CampaignType,
			FormatMultiple(rec.ROAS), FormatMoney(rec.Revenue), FormatMoney(rec.TotalCost))
	}
	t.Render(w)
}

// ============================================================================
// SECTION 10: DATA VALIDATION
// ============================================================================

func (r *Report) renderQuality(w io.Writer) {
	section(w, "10. DATA VALIDATION")
	fmt.Fprintln(w, "Missing values per column:")
	t := &Table{Columns: []Column{
		{Label: "Column", Align: AlignLeft},
		{Label: "Missing", Align: AlignRight},
	}}
	for _, fc := range r.Quality.Missing {
		t.AddRow(fc.Field, FormatInt(fc.Count))
	}
	t.Render(w)

	if r.Quality.Clean() {
		fmt.Fprintln(w, "\n[OK] No missing values - data is intact")
	} else {
		fmt.Fprintf(w, "\n[ALERT] %d missing values need review\n", r.Quality.Total)
	}
}

// ============================================================================
// SECTION 11: RECOMMENDATIONS
// ============================================================================

func (r *Report) renderAdvice(w io.Writer) {
	section(w, "11. STRATEGIC RECOMMENDATIONS")
	if r.Advice == nil {
		fmt.Fprintln(w, "No recommendations: dataset is empty.")
		return
	}
	a := r.Advice

	fmt.Fprintln(w, "1. PLATFORMS:")
	fmt.Fprintf(w, "   [BEST] Best performance: %s (ROAS %s)\n", a.BestPlatform.Name, FormatMultiple(a.BestPlatform.MeanROAS))
	fmt.Fprintf(w, "   [WORST] Worst performance: %s (ROAS %s)\n", a.WorstPlatform.Name, FormatMultiple(a.WorstPlatform.MeanROAS))
	fmt.Fprintf(w, "   [ACTION] Increase investment in %s and review strategy on %s\n", a.BestPlatform.Name, a.WorstPlatform.Name)

	fmt.Fprintln(w, "\n2. TARGET AUDIENCE:")
	fmt.Fprintf(w, "   [BEST] Best performance: %s (ROAS %s)\n", a.BestAudience.Name, FormatMultiple(a.BestAudience.MeanROAS))
	fmt.Fprintf(w, "   [WORST] Worst performance: %s (ROAS %s)\n", a.WorstAudience.Name, FormatMultiple(a.WorstAudience.MeanROAS))
	fmt.Fprintf(w, "   [ACTION] Maximize campaigns for %s, optimize or pause %s\n", a.BestAudience.Name, a.WorstAudience.Name)

	fmt.Fprintln(w, "\n3. KEY METRICS:")
	if a.HealthyROAS {
		fmt.Fprintf(w, "   [OK] Mean ROAS %s is healthy (>%sx is excellent)\n", FormatMultiple(r.KPIs.ROAS), FormatFloat(a.ROASTarget))
	} else {
		fmt.Fprintf(w, "   [ALERT] Mean ROAS %s is below target (goal >%sx)\n", FormatMultiple(r.KPIs.ROAS), FormatFloat(a.ROASTarget))
	}
	if a.RespectableConvRate {
		fmt.Fprintf(w, "   [OK] Conversion rate %s is respectable\n", FormatPercent(r.KPIs.ConversionRate))
	} else {
		fmt.Fprintf(w, "   [ALERT] Conversion rate %s needs improvement\n", FormatPercent(r.KPIs.ConversionRate))
	}

	fmt.Fprintln(w, "\n4. PROFITABILITY:")
	if a.Margin != nil {
		fmt.Fprintf(w, "   [OK] Net profit: %s\n", FormatMoney(a.Margin.NetProfit))
		fmt.Fprintf(w, "   [OK] Profit margin: %.1f%%\n", a.Margin.Percent)
	} else {
		fmt.Fprintf(w, "   [ALERT] Net profit: %s\n", FormatMoney(r.KPIs.NetProfit))
		fmt.Fprintln(w, "   [ALERT] Profit margin: undefined (zero revenue)")
	}
}
