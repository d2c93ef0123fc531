package currency

import (
	"math"
	"strconv"
	"strings"
)

// Suffix multipliers understood by ParseAmount, longest names first so that
// "crore" is not consumed as "cr" plus junk.
var parseSuffixes = []struct {
	name   string
	factor float64
}{
	{"crore", 1e7},
	{"lakh", 1e5},
	{"lac", 1e5},
	{"cr", 1e7},
	{"l", 1e5},
	{"k", 1e3},
	{"m", 1e6},
	{"b", 1e9},
}

// Symbols and markers stripped before numeric parsing.
var parseStrip = []string{DefaultSymbol, "Rs.", "Rs", "INR", "$", "€", "£", ","}

// ParseAmount converts a currency-formatted string into a raw amount:
// "₹1,23,456.78" -> 123456.78, "2.5 Cr" -> 25000000. Unparseable, empty,
// and non-finite inputs yield 0 — disclosure sheets are full of blanks and
// placeholders, and a missing figure must not break a series build.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == Fallback || strings.EqualFold(s, "n/a") || strings.EqualFold(s, "na") {
		return 0
	}

	for _, marker := range parseStrip {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.TrimSpace(s)

	factor := 1.0
	lower := strings.ToLower(s)
	for _, suf := range parseSuffixes {
		if strings.HasSuffix(lower, suf.name) {
			factor = suf.factor
			s = strings.TrimSpace(s[:len(s)-len(suf.name)])
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v * factor
}
