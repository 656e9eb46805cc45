// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount with thousands separators.
// Whole amounts drop the fraction: 1234.50 -> "1,234.50", 1234 -> "1,234".
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	frac := math.Round((amount - float64(whole)) * 100)
	if frac >= 100 {
		whole++
		frac = 0
	}

	s := FormatNumber(whole)
	if frac > 0 {
		s = fmt.Sprintf("%s.%02d", s, int64(frac))
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatAmount renders a money value with its currency code, e.g. "1,234 SAR".
func FormatAmount(amount float64, currency string) string {
	if currency == "" {
		return FormatMoney(amount)
	}
	return FormatMoney(amount) + " " + currency
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
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSigned formats a money delta with an explicit sign.
func FormatSigned(amount float64) string {
	if amount >= 0 {
		return "+" + FormatMoney(amount)
	}
	return "-" + FormatMoney(-amount)
}
