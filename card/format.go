package card

import (
	"fmt"
	"strings"
)

// FormatNumber groups the digits of number in runs of four for display.
func FormatNumber(number string) string {
	digits := CleanDigits(number)
	groups := make([]string, 0, len(digits)/4+1)
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

//MM/YY
func FormatExpiration(month, year string) string {
	if len(month) < 2 {
		month = strings.Repeat("0", 2-len(month)) + month
	}
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return fmt.Sprintf("%s/%s", month, year)
}

// Mask keeps the first 6 and last 4 digits and stars out the rest. Used
// wherever a number ends up in a log line.
func Mask(number string) string {
	length := len(number)
	if length <= 10 {
		return number
	}
	return number[:6] + strings.Repeat("*", length-10) + number[length-4:]
}
