package growth

import (
	"fmt"
)

// DefaultPercentDigits is the fraction-digit precision used by display code
// when no override is configured.
const DefaultPercentDigits = 1

// Sentinel is what FormatPercent renders when a rate could not be computed.
const Sentinel = "N/A"

// FormatPercent renders a growth rate as a percentage string with the given
// number of fraction digits, e.g. 0.123 -> "12.3%" and -0.05 -> "-5.0%".
// Negative rates carry a minus sign; non-negative rates are unsigned. A
// negative digits argument selects DefaultPercentDigits. When ok is false
// the sentinel string is returned.
func FormatPercent(rate float64, ok bool, digits int) string {
	if !ok {
		return Sentinel
	}
	if digits < 0 {
		digits = DefaultPercentDigits
	}
	return fmt.Sprintf("%.*f%%", digits, rate*100)
}

// SignedPercent is FormatPercent with an explicit "+" on non-negative rates,
// for call sites that want symmetric signs on dashboards. The bare formatter
// stays unsigned so both presentation conventions remain available.
func SignedPercent(rate float64, ok bool, digits int) string {
	s := FormatPercent(rate, ok, digits)
	if !ok {
		return s
	}
	if rate >= 0 {
		return "+" + s
	}
	return s
}
