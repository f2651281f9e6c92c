package card

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	assert.Equal(t, "4111111111111111", Complete("411111111111111"))
	assert.Equal(t, "5500000000000004", Complete("550000000000000"))
	assert.Equal(t, "378282246310005", Complete("37828224631000"))
	assert.Equal(t, "79927398713", Complete("7992739871"))
	assert.Equal(t, byte('3'), CheckDigit("7992739871"))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("4111111111111111"))
	assert.True(t, Validate("4111 1111 1111 1111"))
	assert.True(t, Validate("6011111111111117"))
	assert.False(t, Validate("4111111111111112"))
	assert.False(t, Validate("123"))
	// Luhn-valid but under 13 digits.
	assert.False(t, Validate("79927398713"))
}

func TestCompleteThenCheck(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	synth := NewSynthesizer(rnd, nil)
	for length := 1; length <= 19; length++ {
		for i := 0; i < 20; i++ {
			full := Complete(synth.Digits(length))
			assert.Len(t, full, length+1)
			assert.Zero(t, luhnSum(full, false)%10, "number %s", full)
			if len(full) >= 13 {
				assert.True(t, Validate(full), "number %s", full)
			}
		}
	}
}

func TestValidate_SingleDigitMutation(t *testing.T) {
	full := Complete("453201511283036")
	assert.True(t, Validate(full))

	b := []byte(full)
	b[len(b)-1] = byte('0' + (int(b[len(b)-1]-'0')+1)%10)
	assert.False(t, Validate(string(b)))
}
