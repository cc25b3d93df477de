// Package currencyutils provides the decimal amount operations used
// throughout the application.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StripGrouping removes the comma thousands separators from a numeral,
// "4,000.00" -> "4000.00".
func StripGrouping(numeral string) string {
	return strings.ReplaceAll(numeral, ",", "")
}

// ParseStatementAmount parses a statement amount numeral, with or without
// grouping commas, into a decimal normalized to 2 fractional digits.
// Statement amounts are unsigned, so Round's half-away-from-zero behaviour is
// round-half-up here.
func ParseStatementAmount(numeral string) (decimal.Decimal, error) {
	stripped := StripGrouping(strings.TrimSpace(numeral))
	amount, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", numeral, err)
	}
	return amount.Round(2), nil
}

// FormatGrouped renders an amount with 2 decimal places and comma thousands
// separators, matching how amounts appear on statement lines: 4000 ->
// "4,000.00", 101.5 -> "101.50".
func FormatGrouped(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	first := len(intPart) % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(intPart[:first])
	for i := first; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
