package engine

import (
	"errors"
	"math"
)

// ============================================================================
// RECOMMENDATION — Best/worst groups by mean ROAS + threshold flags
// ============================================================================

// Recommend derives the strategic summary: best and worst platform and
// audience bucket by mean ROAS, the two threshold flags, and the profit
// margin. A zero total revenue leaves Margin nil rather than failing — the
// report prints it as undefined.
//
// Fails with ErrEmptyDataset on zero records (there is no best group of
// nothing). Ties on mean ROAS resolve to the group occurring first in the
// dataset, keeping the result deterministic.
func Recommend(ds *Dataset, kpis *KPIRecord, opts ...Option) (*Recommendation, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	cfg := applyOptions(opts)

	byPlatform, err := meanROASBy(ds, "platform")
	if err != nil {
		return nil, err
	}
	byAudience, err := meanROASBy(ds, "target_audience")
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{
		HealthyROAS:          kpis.ROAS > cfg.ROASTarget,
		RespectableConvRate:  kpis.ConversionRate > cfg.ConversionRateTarget,
		ROASTarget:           cfg.ROASTarget,
		ConversionRateTarget: cfg.ConversionRateTarget,
	}
	rec.BestPlatform, rec.WorstPlatform = bestAndWorst(byPlatform)
	rec.BestAudience, rec.WorstAudience = bestAndWorst(byAudience)

	if margin, err := ProfitMargin(kpis); err == nil {
		rec.Margin = &MarginData{NetProfit: kpis.NetProfit, Percent: margin}
	} else if !errors.Is(err, ErrZeroRevenue) {
		return nil, err
	}
	return rec, nil
}

func meanROASBy(ds *Dataset, groupKey string) ([]GroupScore, error) {
	table, err := AggregateBy(ds, groupKey, []Metric{{Field: "roas", Reduce: ReduceMean}})
	if err != nil {
		return nil, err
	}
	scores := make([]GroupScore, 0, len(table.Rows))
	for _, row := range table.Rows {
		scores = append(scores, GroupScore{Name: row.Key, MeanROAS: row.Values[0]})
	}
	return scores, nil
}

// bestAndWorst picks the highest and lowest mean-ROAS groups. Groups whose
// mean is NaN (all values missing) are never picked over a real number.
func bestAndWorst(scores []GroupScore) (best, worst GroupScore) {
	best, worst = scores[0], scores[0]
	for _, s := range scores[1:] {
		if betterThan(s.MeanROAS, best.MeanROAS) {
			best = s
		}
		if worseThan(s.MeanROAS, worst.MeanROAS) {
			worst = s
		}
	}
	return best, worst
}

func betterThan(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}

func worseThan(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}
