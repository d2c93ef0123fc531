package exporter

import (
	"fmt"
	"strconv"
)

// formatAmount formats a monetary amount for CSV output with exactly 2
// decimal places, so 13.4 appears as 13.40 across every dataset.
func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatYear formats a fiscal year for CSV output.
func formatYear(year int) string {
	return strconv.Itoa(year)
}

// formatBool formats a boolean flag for CSV output.
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
