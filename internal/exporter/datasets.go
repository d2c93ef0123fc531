package exporter

import (
	"fmt"

	"remcli/internal/dataprocessing"
	"remcli/internal/esop"
)

// growthSummaryHeaders is the column layout of the growth summary dataset.
var growthSummaryHeaders = []string{
	"CompanyID", "CompanyName", "DirectorID", "DirectorName", "Designation",
	"YearsDisclosed", "LatestFY", "LatestTotal", "LatestDisplay",
	"CompGrowth", "CompGrowthOK", "CompGrowthDisplay",
}

// esopSeriesHeaders is the column layout of the ESOP series dataset.
var esopSeriesHeaders = []string{
	"CompanyID", "DirectorID", "DirectorName", "Year", "FairValue", "MarketValue",
}

// WriteGrowthSummaries writes one row per director summary. A summary whose
// growth could not be computed still exports, with the sentinel display and
// an empty numeric growth column — downstream charts render it as "no data".
func (w *CSVWriter) WriteGrowthSummaries(summaries []dataprocessing.DirectorSummary, filePath string) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		growthCol := ""
		if s.CompGrowthOK {
			growthCol = fmt.Sprintf("%.6f", s.CompGrowth)
		}
		records = append(records, []string{
			s.CompanyID,
			s.CompanyName,
			s.DirectorID,
			s.DirectorName,
			s.Designation,
			formatYear(s.YearsDisclosed),
			s.LatestFY,
			formatAmount(s.LatestTotal),
			s.LatestDisplay,
			growthCol,
			formatBool(s.CompGrowthOK),
			s.CompGrowthDisplay,
		})
	}

	if err := w.WriteCSV(filePath, WriteOptions{
		Headers:   growthSummaryHeaders,
		Records:   records,
		BOMPrefix: true,
	}); err != nil {
		return fmt.Errorf("write growth summaries: %w", err)
	}
	return nil
}

// WriteEsopSeries writes the flattened ESOP valuation series of every
// summarized director, one row per (director, year) point.
func (w *CSVWriter) WriteEsopSeries(summaries []dataprocessing.DirectorSummary, filePath string) error {
	var records [][]string
	for _, s := range summaries {
		for _, p := range s.EsopSeries {
			records = append(records, esopSeriesRow(s, p))
		}
	}

	if err := w.WriteCSV(filePath, WriteOptions{
		Headers:   esopSeriesHeaders,
		Records:   records,
		BOMPrefix: true,
	}); err != nil {
		return fmt.Errorf("write esop series: %w", err)
	}
	return nil
}

func esopSeriesRow(s dataprocessing.DirectorSummary, p esop.Point) []string {
	return []string{
		s.CompanyID,
		s.DirectorID,
		s.DirectorName,
		formatYear(p.Year),
		formatAmount(p.FairValue),
		formatAmount(p.MarketValue),
	}
}
