// Package exporter writes the pipeline's chart-ready datasets as CSV files:
// per-director growth summaries and per-director ESOP valuation series.
//
// CSVWriter is the shared writing core, with support for headers, append
// mode, and a UTF-8 BOM so the files open cleanly in Excel. The dataset
// writers on top of it fix the column layouts the frontend consumes.
package exporter
