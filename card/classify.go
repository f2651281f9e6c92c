package card

import (
	"strings"

	"git.thinkinpower.net/bingen/data"
	"git.thinkinpower.net/bingen/mod"
)

// CleanDigits drops every character that is not an ASCII digit.
func CleanDigits(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			builder.WriteByte(c)
		}
	}
	return builder.String()
}

// Classify returns the first network in catalog order whose prefixes match
// the number, or Unknown.
func Classify(number string) mod.CardType {
	digits := CleanDigits(number)
	for _, p := range catalog {
		if p.Matches(digits) {
			return p.Name
		}
	}
	return mod.CardTypeUnknown
}

// PatternFor classifies a BIN and returns the matching catalog entry.
func PatternFor(bin string) (CardPattern, bool) {
	return Lookup(Classify(bin))
}

// LengthFor picks the length to generate for a network: 16 when the network
// issues 16-digit numbers, otherwise its first declared length.
func LengthFor(network mod.CardType) int {
	var (
		p  CardPattern
		ok bool
	)
	if p, ok = Lookup(network); !ok || len(p.Lengths) == 0 {
		return data.DefaultCardLength
	}
	if p.HasLength(data.DefaultCardLength) {
		return data.DefaultCardLength
	}
	return p.Lengths[0]
}

// CvvLengthFor returns the network's CVV length, 3 when it has none.
func CvvLengthFor(network mod.CardType) int {
	if p, ok := Lookup(network); ok && p.CvvLength > 0 {
		return p.CvvLength
	}
	return data.DefaultCvvLength
}

// Describe classifies a number and reports its generation lengths.
func Describe(number string) mod.CardClassification {
	network := Classify(number)
	return mod.CardClassification{
		Network:   network,
		Length:    LengthFor(network),
		CvvLength: CvvLengthFor(network),
	}
}
