// Package growth computes compound annual growth rates (CAGR) over noisy
// fiscal-year observation series.
//
// Disclosure data arrives unordered, with gaps, and with duplicate rows for
// the same fiscal year (multiple filings in one year). Compute sanitizes the
// input, sums duplicate years, windows to the most recent N years, and falls
// back to period counting when the year span is degenerate. Every degenerate
// condition resolves to the (0, false) sentinel instead of an error or a
// misleading number, because results feed directly into display paths.
//
// Usage:
//
//	entries := []growth.YearValue{
//	    {Year: 2021, Value: 1000},
//	    {Year: 2022, Value: 1100},
//	    {Year: 2023, Value: 1210},
//	}
//	g, ok := growth.Compute(entries, growth.DefaultMaxYears)
//	fmt.Println(growth.FormatPercent(g, ok, 1)) // "10.0%"
//
// All functions are pure and safe for concurrent use.
package growth
