package esop

import (
	"sort"

	"remcli/internal/currency"
	"remcli/pkg/contracts/domain"
)

// Point is one fiscal year's option valuation pair. Values are raw amounts
// in the filing's base unit; a field the source could not supply parses
// to 0 rather than failing the series.
type Point struct {
	Year        int     `json:"year"`
	FairValue   float64 `json:"fair_value"`
	MarketValue float64 `json:"market_value"`
}

// BuildSeries converts a director's remuneration records into an ascending
// per-year valuation series. Records without a resolvable fiscal year are
// skipped. When several records share a year, the last one in input order
// wins. Empty input yields an empty, non-nil series so chart code can
// always range over the result.
func BuildSeries(records []domain.RemunerationRecord) []Point {
	byYear := make(map[int]Point, len(records))
	for _, rec := range records {
		year := rec.FiscalYear()
		if year == 0 {
			continue
		}
		byYear[year] = Point{
			Year:        year,
			FairValue:   currency.ParseAmount(rec.FairValue),
			MarketValue: currency.ParseAmount(rec.AggregateValue),
		}
	}

	series := make([]Point, 0, len(byYear))
	for _, p := range byYear {
		series = append(series, p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}
