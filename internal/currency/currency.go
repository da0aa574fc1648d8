// Package currency formats INR amounts for display using the Indian numbering system.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSymbol is the rupee sign prefixed to display strings.
const DefaultSymbol = "₹"

const (
	thousand = 1e3
	lakh     = 1e5
	crore    = 1e7
)

// Formatter converts amounts to and from display strings.
type Formatter struct {
	Symbol string
}

// NewFormatter creates a formatter for the given currency symbol.
// An empty symbol falls back to DefaultSymbol.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

var defaultFormatter = NewFormatter(DefaultSymbol)

// ToDisplayString formats amount with the default rupee symbol.
func ToDisplayString(amount float64) string {
	return defaultFormatter.ToDisplayString(amount)
}

// ToNumber parses a display string produced with the default rupee symbol.
func ToNumber(display string) float64 {
	return defaultFormatter.ToNumber(display)
}

// ToDisplayString rounds amount to 2 decimals and renders it with Indian digit
// grouping, e.g. 1234567.5 -> "₹12,34,567.50". NaN and infinities render as zero.
func (f Formatter) ToDisplayString(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(str, ".")

	result := f.Symbol + groupIndian(intPart) + "." + decPart
	// -0.001 rounds to 0.00 and must not keep its sign
	if negative && strings.Trim(intPart+decPart, "0") != "" {
		result = "-" + result
	}
	return result
}

// ToNumber strips the currency symbol and separators and parses the rest.
// Empty or unparseable input yields 0.
func (f Formatter) ToNumber(display string) float64 {
	s := strings.TrimSpace(display)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, f.Symbol, "")
	if f.Symbol != DefaultSymbol {
		s = strings.ReplaceAll(s, DefaultSymbol, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ToWordsString describes amount in Thousands, Lakhs or Crores.
//
// Amounts below one thousand render as an Indian-grouped integer with the
// fraction truncated. NaN and infinities render as "0".
func ToWordsString(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0"
	}

	switch {
	case amount >= crore:
		return scaled(amount, crore, "Crores")
	case amount >= lakh:
		return scaled(amount, lakh, "Lakhs")
	case amount >= thousand:
		return scaled(amount, thousand, "Thousands")
	}

	// Formatting the truncated float keeps amounts beyond the int64 range exact.
	t := math.Trunc(amount)
	if t == 0 {
		return "0"
	}
	digits := strconv.FormatFloat(math.Abs(t), 'f', 0, 64)
	if t < 0 {
		return "-" + groupIndian(digits)
	}
	return groupIndian(digits)
}

// scaled divides amount into unit and drops a ".00" fraction.
func scaled(amount, unit float64, suffix string) string {
	str := strconv.FormatFloat(amount/unit, 'f', 2, 64)
	str = strings.TrimSuffix(str, ".00")
	return str + " " + suffix
}

// FormatIndianNumber formats an integer in the Indian numbering system.
// Indian system: 1,00,00,000 (1 crore) vs Western: 10,000,000
func FormatIndianNumber(n int64) string {
	if n < 0 {
		// -n overflows for MinInt64; format the unsigned magnitude instead
		return "-" + groupIndian(strconv.FormatUint(uint64(-(n+1))+1, 10))
	}
	return groupIndian(strconv.FormatInt(n, 10))
}

// groupIndian inserts separators into a string of digits.
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// First group of 3 from right (hundreds)
	result := s[n-3:]
	s = s[:n-3]

	// Then groups of 2 (thousands, lakhs, crores)
	for len(s) > 2 {
		result = s[len(s)-2:] + "," + result
		s = s[:len(s)-2]
	}
	if len(s) > 0 {
		result = s + "," + result
	}
	return result
}

// FormatCompact formats amount as lakhs or crores when large enough.
func FormatCompact(amount float64) string {
	abs := math.Abs(amount)

	switch {
	case abs >= crore:
		return fmt.Sprintf("%.2f Cr", amount/crore)
	case abs >= lakh:
		return fmt.Sprintf("%.2f L", amount/lakh)
	}
	return ToDisplayString(amount)
}
