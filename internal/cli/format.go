// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the configured currency symbol.
// Amounts are unit-agnostic; whole values print without decimals.
// e.g., 1234567 -> "$1,234,567", 12.5 -> "$12.50"
func FormatMoney(amount float64, currency string) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount, currency)
	}
	if amount == math.Trunc(amount) {
		return currency + FormatNumber(int64(amount))
	}
	whole := math.Trunc(amount)
	frac := amount - whole
	return fmt.Sprintf("%s%s.%02d", currency, FormatNumber(int64(whole)), int(math.Round(frac*100)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatDays renders a days-until figure for prediction tables.
func FormatDays(days int) string {
	switch {
	case days == 0:
		return "exceeded"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
