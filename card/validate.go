package card

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"git.thinkinpower.net/bingen/data"
	"git.thinkinpower.net/bingen/mod"
)

// FieldErrors maps a request field to a human readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(msgs, "; ")
}

func IsValidBin(bin string) bool {
	return len(CleanDigits(bin)) >= data.MinBinLength && isBinText(bin)
}

func IsValidCvv(cvv string, length int) bool {
	return len(cvv) == length && isDigits(cvv)
}

func IsValidMonth(month string) bool {
	if !isDigits(month) {
		return false
	}
	m, err := strconv.Atoi(month)
	return err == nil && m >= 1 && m <= 12
}

// IsValidYear accepts four digit years from the current year up to
// MaxExpirationYears ahead.
func IsValidYear(year string, now time.Time) bool {
	if !isDigits(year) {
		return false
	}
	y, err := strconv.Atoi(year)
	return err == nil && y >= now.Year() && y <= now.Year()+data.MaxExpirationYears
}

// ValidateRequest checks a generation request before any card is generated.
// It returns nil or FieldErrors.
func ValidateRequest(req mod.GenerationRequest, now time.Time) error {
	errs := FieldErrors{}
	if len(CleanDigits(req.Bin)) < data.MinBinLength {
		errs["bin"] = fmt.Sprintf("BIN must be at least %d digits", data.MinBinLength)
	} else if !isBinText(req.Bin) {
		errs["bin"] = "BIN must contain only digits"
	}
	if req.Quantity < data.MinQuantity || req.Quantity > data.MaxQuantity {
		errs["quantity"] = fmt.Sprintf("Quantity must be between %d and %d", data.MinQuantity, data.MaxQuantity)
	}
	if req.Cvv != "" {
		cvvLength := CvvLengthFor(Classify(req.Bin))
		if !IsValidCvv(req.Cvv, cvvLength) {
			errs["cvv"] = fmt.Sprintf("CVV must be %d digits", cvvLength)
		}
	}
	if exp := req.Expiration; exp != nil {
		if exp.Month == "" {
			errs["expirationMonth"] = "Month is required"
		} else if !IsValidMonth(exp.Month) {
			errs["expirationMonth"] = "Invalid month (1-12)"
		}
		if exp.Year == "" {
			errs["expirationYear"] = "Year is required"
		} else if !IsValidYear(exp.Year, now) {
			errs["expirationYear"] = "Invalid year"
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

//数字, 空格, '-' 分隔符
func isBinText(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < '0' || c > '9') && c != ' ' && c != '-' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
