package card

import (
	"fmt"
	"strings"
	"time"

	"git.thinkinpower.net/bingen/data"
	"git.thinkinpower.net/bingen/mod"
)

// Source is the randomness a Synthesizer draws from. *math/rand.Rand
// satisfies it. A Source is not shared between goroutines.
type Source interface {
	Intn(n int) int
}

// Synthesizer produces the random parts of a card record.
type Synthesizer struct {
	rnd Source
	now func() time.Time
}

// NewSynthesizer uses time.Now when now is nil.
func NewSynthesizer(rnd Source, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{rnd: rnd, now: now}
}

// Digits returns length uniformly random decimal digits.
func (s *Synthesizer) Digits(length int) string {
	if length <= 0 {
		return ""
	}
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		builder.WriteByte(byte('0' + s.rnd.Intn(10)))
	}
	return builder.String()
}

// Cvv returns length random digits.
func (s *Synthesizer) Cvv(length int) string {
	return s.Digits(length)
}

// Expiration picks a year 1 to 5 years ahead and a random month. A month in
// the current year is never before the current month.
func (s *Synthesizer) Expiration() mod.Expiration {
	now := s.now()
	currentYear, currentMonth := now.Year(), int(now.Month())

	year := currentYear + s.rnd.Intn(data.MaxExpirationOffset) + 1
	month := s.rnd.Intn(12) + 1
	if year == currentYear && month < currentMonth {
		month = currentMonth + s.rnd.Intn(12-currentMonth+1)
	}
	return mod.Expiration{
		Month: fmt.Sprintf("%02d", month),
		Year:  fmt.Sprintf("%04d", year),
	}
}
