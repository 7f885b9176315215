package engine

// ============================================================================
// KPIs — Dataset-wide indicators
// ============================================================================

// ComputeKPIs derives the flat KPI record from the full dataset: unweighted
// means of the five ratio fields and sums of budget, cost, and revenue.
//
// Fails with ErrEmptyDataset on zero records — a mean over nothing is
// undefined, and the report prints the KPI section as unavailable instead.
func ComputeKPIs(ds *Dataset) (*KPIRecord, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	k := &KPIRecord{
		CTR:            MeanMeasure(ds, "ctr"),
		ConversionRate: MeanMeasure(ds, "conversion_rate"),
		CPC:            MeanMeasure(ds, "cpc"),
		CPA:            MeanMeasure(ds, "cpa"),
		ROAS:           MeanMeasure(ds, "roas"),
		BudgetTotal:    SumMeasure(ds, "daily_budget"),
		CostTotal:      SumMeasure(ds, "total_cost"),
		RevenueTotal:   SumMeasure(ds, "revenue"),
	}
	k.NetProfit = k.RevenueTotal - k.CostTotal
	return k, nil
}

// ProfitMargin computes net profit as a percentage of total revenue.
// Fails with ErrZeroRevenue when there is no revenue to divide by.
func ProfitMargin(k *KPIRecord) (float64, error) {
	if k.RevenueTotal == 0 {
		return 0, ErrZeroRevenue
	}
	return k.NetProfit / k.RevenueTotal * 100, nil
}
