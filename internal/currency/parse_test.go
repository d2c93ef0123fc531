package currency

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"grouped_indian", "₹1,23,456.78", 123456.78},
		{"grouped_international", "₹12,345,678", 12345678},
		{"plain_number", "42000", 42000},
		{"rs_prefix", "Rs. 5,00,000", 500000},
		{"crore_suffix", "2.5 Cr", 25000000},
		{"crore_word", "1 crore", 10000000},
		{"lakh_suffix", "3.2 L", 320000},
		{"lakh_word", "12 lakh", 1200000},
		{"thousand_suffix", "750K", 750000},
		{"million_suffix", "1.5M", 1500000},
		{"negative", "-₹1,500", -1500},
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"dash_fallback", "—", 0},
		{"not_applicable", "N/A", 0},
		{"garbage", "not a number", 0},
		{"bare_symbol", "₹", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmountRoundTripsFormatRaw(t *testing.T) {
	f := DefaultFormatter()
	for _, amount := range []float64{0, 950, 1234, 123456.78, 12345678, -500000} {
		s := f.FormatRaw(amount)
		if got := ParseAmount(s); math.Abs(got-amount) > 1e-9 {
			t.Errorf("ParseAmount(FormatRaw(%v)) = %v via %q", amount, got, s)
		}
	}
}
