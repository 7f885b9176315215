// Package adlens provides a report engine for advertising campaign data.
// Descriptive statistics, grouped aggregations, and KPIs over a campaign CSV.
//
// Usage:
//
//	import "github.com/adlens-io/adlens/engine"
//
//	table, err := engine.AggregateBy(ds, "platform", []engine.Metric{
//	    {Reduce: engine.ReduceCount},
//	    {Field: "revenue", Reduce: engine.ReduceSum},
//	    {Field: "roas", Reduce: engine.ReduceMean},
//	})
//
// The engine takes an immutable Dataset (produced by the loader package) and
// returns plain result values (aggregate tables, a KPI record, rankings, a
// quality summary, a recommendation). Console formatting lives in the report
// package and PNG chart rendering in the render package — the engine itself
// performs no I/O and holds no state between calls.
package adlens
