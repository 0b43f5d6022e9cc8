// Package currency renders monetary amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders amount as a dollar string with comma thousands grouping and
// exactly two decimal digits, e.g. Format(1234.5) == "$1,234.50". Negative
// amounts carry the sign inside the symbol: "$-5.00".
func Format(amount decimal.Decimal) string {
	str := amount.StringFixed(2)

	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := ""
	if len(parts) > 1 {
		decPart = parts[1]
	}

	negative := false
	if strings.HasPrefix(intPart, "-") {
		negative = true
		intPart = intPart[1:]
	}

	if len(intPart) > 3 {
		var groups []string
		for len(intPart) > 3 {
			groups = append([]string{intPart[len(intPart)-3:]}, groups...)
			intPart = intPart[:len(intPart)-3]
		}
		if len(intPart) > 0 {
			groups = append([]string{intPart}, groups...)
		}
		intPart = strings.Join(groups, ",")
	}

	var result strings.Builder
	result.WriteString("$")
	if negative {
		result.WriteString("-")
	}
	result.WriteString(intPart)
	result.WriteString(".")
	result.WriteString(decPart)

	return result.String()
}
