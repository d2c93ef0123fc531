// Package dataprocessing ingests director-remuneration disclosure workbooks
// and derives per-director analytics from them.
//
// The package has two components:
//
// Parser: reads a "Dir Consol" Excel sheet — one row per company/director
// with up to five fiscal-year slots of remuneration and ESOP columns — into
// domain.DisclosureSet. Sheet names, header positions, and date formats all
// vary across filings, so discovery is tolerant: headers are mapped by name
// (with duplicates disambiguated), dates accept Excel serials and several
// string layouts, and rows missing a company identifier are counted and
// skipped rather than failing the parse.
//
// Summarizer: turns a DisclosureSet into per-director summaries — latest
// fiscal year figures, compensation CAGR over the configured window, and
// the ESOP valuation series length — with display strings rendered through
// the configured currency formatter.
//
// Typical flow:
//
//	set, err := dataprocessing.ParseDirConsol("Dir Consol FY2024.xlsx", logger)
//	if err != nil {
//	    return err
//	}
//	s := dataprocessing.NewSummarizer(logger, dataprocessing.DefaultSummarizerConfig())
//	summaries := s.Summarize(set)
package dataprocessing
