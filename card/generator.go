package card

import (
	"math/rand"
	"time"

	"git.thinkinpower.net/bingen/data"
	"git.thinkinpower.net/bingen/mod"
	"github.com/pkg/errors"
)

//输入不合法, 不会生成任何卡号
var ErrInvalidBin = errors.New("invalid bin")

// Generator builds complete card records from a BIN. It owns its Source, so
// a Generator must not be used from more than one goroutine at a time.
type Generator struct {
	synth *Synthesizer
}

func NewGenerator(rnd Source, now func() time.Time) *Generator {
	return &Generator{synth: NewSynthesizer(rnd, now)}
}

// NewRandomGenerator returns a Generator seeded from the wall clock.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// Number generates one checksum-complete card number starting with bin. It
// fails when bin leaves no room for the check digit.
func (g *Generator) Number(bin string) (string, error) {
	cleanBin := CleanDigits(bin)
	length := LengthFor(Classify(cleanBin))

	fillLength := length - len(cleanBin) - 1
	if fillLength < 0 {
		return "", errors.Wrapf(ErrInvalidBin, "BIN is too long for the card type (%d digits, card length %d)", len(cleanBin), length)
	}
	return Complete(cleanBin + g.synth.Digits(fillLength)), nil
}

// Generate produces req.Quantity records in order. Every number gets fresh
// filler digits; CVV and expiration come from the request when set.
func (g *Generator) Generate(req mod.GenerationRequest) ([]mod.CardRecord, error) {
	cleanBin := CleanDigits(req.Bin)
	if len(cleanBin) < data.MinBinLength {
		return nil, errors.Wrapf(ErrInvalidBin, "BIN must be at least %d digits", data.MinBinLength)
	}
	if req.Quantity <= 0 {
		return []mod.CardRecord{}, nil
	}
	cvvLength := CvvLengthFor(Classify(cleanBin))

	var (
		number string
		err    error
	)
	cards := make([]mod.CardRecord, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		if number, err = g.Number(cleanBin); err != nil {
			return nil, err
		}

		record := mod.CardRecord{Number: number, Type: Classify(number)}
		if req.Cvv != "" {
			record.Cvv = req.Cvv
		} else {
			record.Cvv = g.synth.Cvv(cvvLength)
		}

		if req.Expiration != nil && req.Expiration.Month != "" && req.Expiration.Year != "" {
			record.ExpirationMonth = req.Expiration.Month
			record.ExpirationYear = req.Expiration.Year
		} else {
			exp := g.synth.Expiration()
			record.ExpirationMonth = exp.Month
			record.ExpirationYear = exp.Year
		}
		cards = append(cards, record)
	}
	return cards, nil
}
