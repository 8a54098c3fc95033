package logincode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitGenerator(t *testing.T) {
	for _, v := range []int{1, 2, 4, 6, 8} {
		g := NewDigitGenerator(v)
		s, err := g.Generate(nil)
		assert.NoError(t, err)
		assert.Len(t, s, v)
		for _, c := range s {
			assert.True(t, c >= '0' && c <= '9', "code %q", s)
		}
	}
}

func TestDigitGeneratorCoversAllDigits(t *testing.T) {
	// Every digit should come up eventually, leading zeros included
	g := NewDigitGenerator(1)
	seen := map[string]int{"0": 0, "1": 0, "2": 0, "3": 0, "4": 0,
		"5": 0, "6": 0, "7": 0, "8": 0, "9": 0}
	for len(seen) > 0 {
		s, err := g.Generate(nil)
		assert.NoError(t, err)
		delete(seen, s)
	}
}

func TestRandBytesPoolTooLarge(t *testing.T) {
	_, err := randBytes(make([]byte, 257), 4)
	assert.Error(t, err)
}
