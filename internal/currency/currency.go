package currency

import (
	"math"
	"strconv"
	"strings"
)

// Convention selects the abbreviation and digit-grouping scheme.
type Convention string

const (
	// ConventionIndian abbreviates in thousand/lakh/crore and groups digits
	// 1,23,45,678-style.
	ConventionIndian Convention = "indian"
	// ConventionInternational abbreviates in K/M/B and groups digits
	// 12,345,678-style.
	ConventionInternational Convention = "international"
)

// IsValid reports whether the convention is one of the known schemes.
func (c Convention) IsValid() bool {
	return c == ConventionIndian || c == ConventionInternational
}

// Fallback is rendered for non-finite amounts.
const Fallback = "—"

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "₹"

// Formatter renders amounts under one convention/symbol pair. The zero
// value is not useful; construct with NewFormatter or DefaultFormatter.
type Formatter struct {
	Convention Convention
	Symbol     string
}

// NewFormatter returns a formatter for the given convention and symbol,
// substituting the Indian convention and DefaultSymbol for empty arguments.
func NewFormatter(convention Convention, symbol string) Formatter {
	if !convention.IsValid() {
		convention = ConventionIndian
	}
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Convention: convention, Symbol: symbol}
}

// DefaultFormatter matches the source application's implicit behavior:
// Indian convention, rupee symbol.
func DefaultFormatter() Formatter {
	return NewFormatter(ConventionIndian, DefaultSymbol)
}

type scaleUnit struct {
	factor float64
	suffix string
}

// Largest unit first; formatters pick the first unit the magnitude reaches.
var (
	indianUnits = []scaleUnit{
		{1e7, "Cr"},
		{1e5, "L"},
		{1e3, "K"},
	}
	internationalUnits = []scaleUnit{
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}
)

func (f Formatter) units() []scaleUnit {
	if f.Convention == ConventionInternational {
		return internationalUnits
	}
	return indianUnits
}

// FormatCompact renders the amount in the largest unit its magnitude
// reaches, rounded to at most two fraction digits, with the currency symbol:
// 12_500_000 -> "₹1.25 Cr" under the Indian convention. Negative amounts
// carry a leading minus; non-finite amounts render as Fallback.
func (f Formatter) FormatCompact(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Fallback
	}
	sign, mag := splitSign(amount)
	for _, u := range f.units() {
		if mag >= u.factor {
			return sign + f.Symbol + trimZeros(mag/u.factor, 2) + " " + u.suffix
		}
	}
	return sign + f.Symbol + trimZeros(mag, 2)
}

// FormatAxisTick renders the amount for chart axis labels: same scaling as
// FormatCompact but terse, with no symbol, no space, and at most one
// fraction digit.
func (f Formatter) FormatAxisTick(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Fallback
	}
	sign, mag := splitSign(amount)
	for _, u := range f.units() {
		if mag >= u.factor {
			return sign + trimZeros(mag/u.factor, 1) + u.suffix
		}
	}
	return sign + trimZeros(mag, 1)
}

// FormatRaw renders the full amount with grouping separators and the
// currency symbol, for tooltips where exactness matters:
// 12_345_678 -> "₹1,23,45,678" (Indian) or "₹12,345,678" (international).
func (f Formatter) FormatRaw(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Fallback
	}
	sign, mag := splitSign(amount)

	s := strconv.FormatFloat(mag, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if f.Convention == ConventionInternational {
		intPart = groupThousands(intPart)
	} else {
		intPart = groupIndian(intPart)
	}
	if hasFrac {
		return sign + f.Symbol + intPart + "." + fracPart
	}
	return sign + f.Symbol + intPart
}

func splitSign(amount float64) (string, float64) {
	if amount < 0 {
		return "-", -amount
	}
	return "", amount
}

// trimZeros rounds to the given fraction digits and drops trailing zeros,
// so 1.20 renders as "1.2" and 2.00 as "2".
func trimZeros(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian keeps the last three digits together and groups the rest in
// pairs: 12345678 -> 1,23,45,678.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var groups []string
	groups = append(groups, digits[n-3:])
	rest := digits[:n-3]
	for len(rest) > 2 {
		groups = append([]string{rest[len(rest)-2:]}, groups...)
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append([]string{rest}, groups...)
	}
	return strings.Join(groups, ",")
}
