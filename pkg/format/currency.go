package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$408,600").
func WholeCurrency(amount float64) string {
	rounded := math.Round(amount)
	formatted := formatPositiveCurrency(math.Abs(rounded))
	formatted = strings.TrimSuffix(formatted, ".00")
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a decimal fraction as a percent string (e.g., 0.0215 -> "2.15%").
func Percent(decimal float64) string {
	return fmt.Sprintf("%.2f%%", decimal*100)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteRune(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
