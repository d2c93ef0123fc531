// Package esop builds chart-ready stock-option valuation series from raw
// director disclosure records.
//
// Each record carries currency-formatted string fields for the grant-date
// fair value and the subsequent market (aggregate) value. BuildSeries
// parses those strings, keeps the latest row per fiscal year — a later
// filing supersedes an earlier one, unlike compensation totals which are
// additive across duplicate rows — and returns the points ascending by
// year as a plain slice that callers can range over any number of times.
package esop
