// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
)

// currencyCode is the active display currency. The engine itself is
// currency-agnostic; this only affects formatting.
var currencyCode = money.USD

// SetCurrency changes the display currency code (e.g. "USD", "EUR").
func SetCurrency(code string) {
	if money.GetCurrency(code) != nil {
		currencyCode = code
	}
}

// FormatCurrency renders an amount with the locale symbol and grouping.
// e.g., 1234.5 -> "$1,234.50"
func FormatCurrency(amount float64) string {
	minor := int64(math.Round(amount * 100))
	return money.New(minor, currencyCode).Display()
}

// FormatPercent renders a 0-100 scale percentage with two decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatMonths renders a month count as years and months.
// e.g., 40 -> "3y 4m", 7 -> "7m"
func FormatMonths(n int) string {
	if n <= 0 {
		return "0m"
	}
	years := n / 12
	months := n % 12
	if years > 0 {
		return fmt.Sprintf("%dy %dm", years, months)
	}
	return fmt.Sprintf("%dm", months)
}

// FormatDate renders a date the way the calendar shows it.
func FormatDate(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

// FormatDelta renders a signed currency delta.
func FormatDelta(amount float64) string {
	if amount >= 0 {
		return "+" + FormatCurrency(amount)
	}
	return "-" + FormatCurrency(-amount)
}
