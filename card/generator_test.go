package card

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"git.thinkinpower.net/bingen/mod"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), func() time.Time { return fixedNow })
}

func TestNumber(t *testing.T) {
	g := newTestGenerator(1)

	t.Run("visa", func(t *testing.T) {
		number, err := g.Number("411111")
		require.NoError(t, err)
		assert.Len(t, number, 16)
		assert.True(t, strings.HasPrefix(number, "411111"))
		assert.True(t, Validate(number))
	})

	t.Run("amex uses 15 digits", func(t *testing.T) {
		number, err := g.Number("378282")
		require.NoError(t, err)
		assert.Len(t, number, 15)
		assert.True(t, Validate(number))
	})

	t.Run("separators are ignored", func(t *testing.T) {
		number, err := g.Number("4111-11")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(number, "411111"))
	})

	t.Run("bin one short of the length only gets a check digit", func(t *testing.T) {
		number, err := g.Number("411111111111111")
		require.NoError(t, err)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("bin that fills the length is rejected", func(t *testing.T) {
		_, err := g.Number("4111111111111111")
		require.Error(t, err)
		assert.Equal(t, ErrInvalidBin, errors.Cause(err))

		_, err = g.Number("340000000000009")
		assert.Equal(t, ErrInvalidBin, errors.Cause(err))
	})
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(42)

	cards, err := g.Generate(mod.GenerationRequest{Bin: "411111", Quantity: 5})
	require.NoError(t, err)
	require.Len(t, cards, 5)

	seen := map[string]bool{}
	for _, c := range cards {
		assert.True(t, strings.HasPrefix(c.Number, "411111"))
		assert.Len(t, c.Number, 16)
		assert.True(t, Validate(c.Number), "number %s", c.Number)
		assert.Equal(t, mod.CardTypeVisa, c.Type)
		assert.Len(t, c.Cvv, 3)
		assert.Len(t, c.ExpirationMonth, 2)
		assert.Len(t, c.ExpirationYear, 4)
		seen[c.Number] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerate_AmexCvvLength(t *testing.T) {
	cards, err := newTestGenerator(3).Generate(mod.GenerationRequest{Bin: "378282", Quantity: 10})
	require.NoError(t, err)
	for _, c := range cards {
		assert.Len(t, c.Number, 15)
		assert.Len(t, c.Cvv, 4)
		assert.Equal(t, mod.CardTypeAmex, c.Type)
	}
}

func TestGenerate_UnknownFallback(t *testing.T) {
	cards, err := newTestGenerator(3).Generate(mod.GenerationRequest{Bin: "000000", Quantity: 3})
	require.NoError(t, err)
	for _, c := range cards {
		assert.Len(t, c.Number, 16)
		assert.Len(t, c.Cvv, 3)
		assert.Equal(t, mod.CardTypeUnknown, c.Type)
		assert.True(t, Validate(c.Number))
	}
}

func TestGenerate_Overrides(t *testing.T) {
	req := mod.GenerationRequest{
		Bin:        "550000",
		Quantity:   4,
		Cvv:        "12345",
		Expiration: &mod.Expiration{Month: "07", Year: "2030"},
	}
	cards, err := newTestGenerator(9).Generate(req)
	require.NoError(t, err)
	for _, c := range cards {
		assert.Equal(t, "12345", c.Cvv)
		assert.Equal(t, "07", c.ExpirationMonth)
		assert.Equal(t, "2030", c.ExpirationYear)
	}
}

func TestGenerate_PartialExpirationIsIgnored(t *testing.T) {
	req := mod.GenerationRequest{Bin: "550000", Quantity: 1, Expiration: &mod.Expiration{Month: "07"}}
	cards, err := newTestGenerator(9).Generate(req)
	require.NoError(t, err)
	assert.NotEqual(t, "", cards[0].ExpirationYear)
	assert.Len(t, cards[0].ExpirationYear, 4)
}

func TestGenerate_Rejected(t *testing.T) {
	g := newTestGenerator(1)

	cards, err := g.Generate(mod.GenerationRequest{Bin: "41111", Quantity: 5})
	assert.Nil(t, cards)
	assert.Equal(t, ErrInvalidBin, errors.Cause(err))
	assert.Contains(t, err.Error(), "at least 6 digits")

	cards, err = g.Generate(mod.GenerationRequest{Bin: "41111111111111111", Quantity: 5})
	assert.Nil(t, cards)
	assert.Equal(t, ErrInvalidBin, errors.Cause(err))
}

func TestGenerate_NonPositiveQuantity(t *testing.T) {
	g := newTestGenerator(1)

	for _, quantity := range []int{0, -1, -100} {
		var (
			cards []mod.CardRecord
			err   error
		)
		assert.NotPanics(t, func() {
			cards, err = g.Generate(mod.GenerationRequest{Bin: "411111", Quantity: quantity})
		})
		assert.NoError(t, err)
		assert.Empty(t, cards)
	}

	_, err := g.Generate(mod.GenerationRequest{Bin: "4111", Quantity: -1})
	assert.Equal(t, ErrInvalidBin, errors.Cause(err))
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	req := mod.GenerationRequest{Bin: "622126", Quantity: 10}
	a, err := newTestGenerator(2024).Generate(req)
	require.NoError(t, err)
	b, err := newTestGenerator(2024).Generate(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
