package growth

import (
	"math"
	"sort"
)

// DefaultMaxYears is the window applied when callers have no preference.
// Disclosure sheets carry at most five year slots per row.
const DefaultMaxYears = 5

// YearValue is one fiscal year's observation of a monetary quantity.
// Values share a single currency unit across a series.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Normalize sanitizes a raw observation series: entries with a non-finite or
// non-positive value are dropped (growth is undefined for non-positive
// bases), values sharing a fiscal year are summed, and the result is sorted
// ascending by year. Duplicate years are additive here, unlike the ESOP
// series where later filings supersede earlier ones.
func Normalize(entries []YearValue) []YearValue {
	byYear := make(map[int]float64, len(entries))
	for _, e := range entries {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) || e.Value <= 0 {
			continue
		}
		byYear[e.Year] += e.Value
	}

	series := make([]YearValue, 0, len(byYear))
	for year, value := range byYear {
		series = append(series, YearValue{Year: year, Value: value})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

// Compute returns the compound annual growth rate of the most recent
// maxYears fiscal years of the series, e.g. 0.123 for 12.3% average annual
// growth. The window never shrinks below two entries regardless of maxYears.
// ok is false when the series cannot support a meaningful rate: fewer than
// two positive observations, a degenerate year span, or a non-finite result.
func Compute(entries []YearValue, maxYears int) (float64, bool) {
	series := Normalize(entries)
	if len(series) < 2 {
		return 0, false
	}

	window := maxYears
	if window < 2 {
		window = 2
	}
	if window < len(series) {
		series = series[len(series)-window:]
	}
	if len(series) < 2 {
		return 0, false
	}

	first := series[0]
	last := series[len(series)-1]

	// Same-year entries collapse during normalization, but a sheet can still
	// record consecutive periods under one nominal year. Fall back to
	// counting periods so the exponent never degenerates.
	spanYears := last.Year - first.Year
	if periods := len(series) - 1; spanYears < periods {
		spanYears = periods
	}
	if spanYears <= 0 {
		return 0, false
	}

	if first.Value <= 0 || last.Value <= 0 {
		return 0, false
	}
	ratio := last.Value / first.Value
	if ratio <= 0 {
		return 0, false
	}

	rate := math.Pow(ratio, 1/float64(spanYears)) - 1
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, false
	}
	return rate, true
}
