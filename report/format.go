package report

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatMoney formats an amount as "$1,234.56". Missing values render "n/a".
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) {
		return "n/a"
	}
	negative := amount < 0
	if negative {
		amount = -amount
	}

	intPart := int64(amount)
	decPart := int64((amount-float64(intPart))*100 + 0.5)
	if decPart >= 100 { // rounding carried over
		intPart++
		decPart -= 100
	}

	result := fmt.Sprintf("$%s.%02d", groupThousands(intPart), decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatFloat formats with two decimals; NaN renders "n/a".
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatPercent formats as "4.52%"; NaN renders "n/a".
func FormatPercent(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatMultiple formats a ROAS-style multiple as "5.20x"; NaN renders "n/a".
func FormatMultiple(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", v)
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	return groupThousands(int64(n))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
