// Package currencyutils parses feed amounts and formats money for reports.
package currencyutils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultSymbol is the currency glyph used when none is configured.
const DefaultSymbol = "₹"

var (
	// ErrEmptyAmount is returned when an amount field is blank.
	ErrEmptyAmount = errors.New("empty amount")

	hundred = decimal.NewFromInt(100)
	printer = message.NewPrinter(language.English)
)

// ParseAmount parses a feed amount such as "45,000" or "1,299.50".
// Commas are thousands separators and are dropped before parsing.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips thousands separators and surrounding whitespace.
func StandardizeAmount(amountStr string) string {
	return strings.TrimSpace(strings.ReplaceAll(amountStr, ",", ""))
}

// FormatAmount renders amount with the currency symbol, English digit
// grouping and the given number of decimal places, e.g. "₹1,234.50".
func FormatAmount(amount decimal.Decimal, symbol string, places int32) string {
	return symbol + FormatNumber(amount, places)
}

// FormatNumber renders amount with digit grouping and fixed decimal places.
func FormatNumber(amount decimal.Decimal, places int32) string {
	if places < 0 {
		places = 0
	}
	fixed := amount.Abs().StringFixed(places)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = printer.Sprintf("%d", n)
	}

	sign := ""
	if amount.IsNegative() && !amount.Round(places).IsZero() {
		sign = "-"
	}
	if fracPart == "" {
		return sign + grouped
	}
	return sign + grouped + "." + fracPart
}

// Percentage returns part as a percentage of total, or zero when total is zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total)
}

// FormatPercent renders a percentage with fixed decimal places, e.g. "12.50%".
func FormatPercent(pct decimal.Decimal, places int32) string {
	return pct.StringFixed(places) + "%"
}

// IsPositive checks if an amount is strictly greater than zero
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
