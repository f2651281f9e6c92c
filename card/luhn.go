package card

import (
	"git.thinkinpower.net/bingen/data"
)

// luhnSum walks digits right to left, doubling every other digit. doubleFirst
// decides whether the rightmost digit is doubled: true when computing a check
// digit for a partial number, false when checking a complete one.
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

// CheckDigit computes the Luhn check digit to append to partial.
func CheckDigit(partial string) byte {
	sum := luhnSum(CleanDigits(partial), true)
	return byte('0' + (10-sum%10)%10)
}

// Complete appends the Luhn check digit to the digits of partial.
//
//	Complete("411111111111111") => "4111111111111111"
func Complete(partial string) string {
	digits := CleanDigits(partial)
	return digits + string(CheckDigit(digits))
}

// Validate reports whether number passes the Luhn check. Numbers shorter than
// 13 digits are never valid.
func Validate(number string) bool {
	digits := CleanDigits(number)
	if len(digits) < data.MinValidateLength {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}
