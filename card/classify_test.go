package card

import (
	"testing"

	"git.thinkinpower.net/bingen/mod"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		number string
		want   mod.CardType
	}{
		{"4111111111111111", mod.CardTypeVisa},
		{"5500000000000004", mod.CardTypeMastercard},
		{"2221000000000009", mod.CardTypeMastercard},
		{"340000000000009", mod.CardTypeAmex},
		{"378282246310005", mod.CardTypeAmex},
		{"6011111111111117", mod.CardTypeDiscover},
		{"6445000000000000", mod.CardTypeDiscover},
		{"3530111333300000", mod.CardTypeJCB},
		{"30569309025904", mod.CardTypeDinersClub},
		{"36000000000000", mod.CardTypeDinersClub},
		{"6200000000000000", mod.CardTypeUnionPay},
		{"5018000000000000", mod.CardTypeMaestro},
		{"6304000000000000", mod.CardTypeMaestro},
		{"000000", mod.CardTypeUnknown},
		{"3", mod.CardTypeUnknown},
		{"", mod.CardTypeUnknown},
		{"4111-1111 1111-1111", mod.CardTypeVisa},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.number), "number %q", tt.number)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// 65xx matches both Discover and the broad Maestro 6 prefix.
	assert.Equal(t, mod.CardTypeDiscover, Classify("650000"))

	p, ok := Lookup(mod.CardTypeMaestro)
	assert.True(t, ok)
	assert.True(t, p.Matches("650000"))
}

func TestLengthFor(t *testing.T) {
	assert.Equal(t, 16, LengthFor(mod.CardTypeVisa))
	assert.Equal(t, 16, LengthFor(mod.CardTypeMastercard))
	assert.Equal(t, 15, LengthFor(mod.CardTypeAmex))
	assert.Equal(t, 16, LengthFor(mod.CardTypeDinersClub))
	assert.Equal(t, 16, LengthFor(mod.CardTypeMaestro))
	assert.Equal(t, 16, LengthFor(mod.CardTypeUnknown))
	assert.Equal(t, 16, LengthFor(mod.CardType("Nope")))
}

func TestCvvLengthFor(t *testing.T) {
	assert.Equal(t, 4, CvvLengthFor(mod.CardTypeAmex))
	assert.Equal(t, 3, CvvLengthFor(mod.CardTypeVisa))
	assert.Equal(t, 3, CvvLengthFor(mod.CardTypeUnknown))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, mod.CardClassification{Network: mod.CardTypeAmex, Length: 15, CvvLength: 4}, Describe("378282"))
	assert.Equal(t, mod.CardClassification{Network: mod.CardTypeUnknown, Length: 16, CvvLength: 3}, Describe("000000"))
}

func TestPatterns_IsACopy(t *testing.T) {
	patterns := Patterns()
	assert.Len(t, patterns, 8)
	assert.Equal(t, mod.CardTypeVisa, patterns[0].Name)
	assert.Equal(t, mod.CardTypeMaestro, patterns[len(patterns)-1].Name)

	patterns[0] = CardPattern{Name: "Changed"}
	assert.Equal(t, mod.CardTypeVisa, Patterns()[0].Name)
}

func TestCleanDigits(t *testing.T) {
	assert.Equal(t, "4532015112830366", CleanDigits("4532-0151-1283-0366"))
	assert.Equal(t, "4532015112830366", CleanDigits("Card: 4532 0151 1283 0366"))
	assert.Equal(t, "", CleanDigits("abc"))
}

func TestPatternFor(t *testing.T) {
	p, ok := PatternFor("3782 82")
	assert.True(t, ok)
	assert.Equal(t, mod.CardTypeAmex, p.Name)
	assert.Equal(t, []int{15}, p.Lengths)

	_, ok = PatternFor("000000")
	assert.False(t, ok)
}
