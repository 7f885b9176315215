package engine

// ============================================================================
// ENGINE TYPES — Campaign records and report result values
// ============================================================================
// Result values are plain data: the report package formats them for the
// console, the render package turns them into charts. Nothing here is
// mutated after the producing operation returns.
// ============================================================================

// CampaignRecord is one row of the campaign dataset.
//
// Numeric fields use NaN for a missing cell and string fields use "" — the
// loader encodes missingness that way and QualityCheck counts it. The five
// ratio fields (CTR through ROAS) arrive pre-computed in the CSV and are
// never recomputed per record by the engine.
type CampaignRecord struct {
	ID             string
	Platform       string
	CampaignType   string
	TargetAudience string

	DailyBudget float64
	Impressions float64
	Clicks      float64
	Conversions float64
	TotalCost   float64
	Revenue     float64

	CTR            float64 // clicks / impressions, percent
	ConversionRate float64 // conversions / clicks, percent
	CPC            float64 // cost / clicks
	CPA            float64 // cost / conversions
	ROAS           float64 // revenue / cost, multiple
}

// ============================================================================
// REDUCTIONS AND METRICS
// ============================================================================

// Reduction names a per-group aggregation.
type Reduction string

const (
	ReduceCount Reduction = "count"
	ReduceSum   Reduction = "sum"
	ReduceMean  Reduction = "mean"
)

// Metric requests one reduction over one measure field.
// Field may be empty for ReduceCount — a plain row count needs no measure.
type Metric struct {
	Field  string
	Reduce Reduction
}

// ============================================================================
// AGGREGATE TABLE
// ============================================================================

// AggregateRow holds the reduction results for one group key.
// Values is parallel to the Metrics slice of the owning table.
type AggregateRow struct {
	Key    string
	Count  int
	Values []float64
}

// AggregateTable is the result of AggregateBy: one row per distinct group
// key, in first-occurrence order of the key in the dataset.
type AggregateTable struct {
	GroupKey string
	Metrics  []Metric
	Rows     []AggregateRow
}

// ============================================================================
// KPI RECORD
// ============================================================================

// KPIRecord is the flat set of dataset-wide indicators.
// Ratio fields are unweighted arithmetic means across all records; the
// totals are straight sums.
type KPIRecord struct {
	CTR            float64
	ConversionRate float64
	CPC            float64
	CPA            float64
	ROAS           float64

	BudgetTotal  float64
	CostTotal    float64
	RevenueTotal float64
	NetProfit    float64 // RevenueTotal - CostTotal
}

// ============================================================================
// QUALITY SUMMARY
// ============================================================================

// FieldCount pairs a field key with its missing-value count.
type FieldCount struct {
	Field string
	Count int
}

// QualitySummary reports missing values per field, in schema column order,
// plus the total across all fields.
type QualitySummary struct {
	Missing []FieldCount
	Total   int
}

// Clean reports whether the dataset had no missing values at all.
func (q *QualitySummary) Clean() bool { return q.Total == 0 }

// ============================================================================
// RECOMMENDATION
// ============================================================================

// GroupScore names a group together with its mean ROAS.
type GroupScore struct {
	Name     string
	MeanROAS float64
}

// MarginData holds the profitability numbers of a recommendation.
type MarginData struct {
	NetProfit float64
	Percent   float64 // net profit / total revenue * 100
}

// Recommendation is the strategic summary derived from grouped ROAS and the
// KPI record. Margin is nil when total revenue is zero — margin is undefined
// then, which is a legitimate business state rather than a failure.
type Recommendation struct {
	BestPlatform  GroupScore
	WorstPlatform GroupScore
	BestAudience  GroupScore
	WorstAudience GroupScore

	HealthyROAS          bool // mean ROAS strictly above the ROAS target
	RespectableConvRate  bool // mean conversion rate strictly above the target
	ROASTarget           float64
	ConversionRateTarget float64

	Margin *MarginData
}
