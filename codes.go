package logincode

import (
	"context"
	"crypto/rand"
	"errors"
)

// CodeGenerator produces the secret login codes delivered to users.
type CodeGenerator interface {
	// Generate returns a fresh code and nil error on success, or an empty
	// string and error on failure.
	Generate(ctx context.Context) (string, error)
}

// DigitGenerator generates numeric codes of the specified length, each digit
// drawn independently and uniformly from a cryptographically secure source.
// The result keeps leading zeros: a 6-digit code is always 6 characters.
type DigitGenerator struct {
	Length int
}

// NewDigitGenerator returns a generator producing codes of length l.
func NewDigitGenerator(l int) *DigitGenerator {
	return &DigitGenerator{Length: l}
}

func (g DigitGenerator) Generate(ctx context.Context) (string, error) {
	b, err := randBytes([]byte("0123456789"), g.Length)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// randBytes returns a random array of bytes picked from `p` of length `n`.
func randBytes(p []byte, n int) ([]byte, error) {
	if len(p) > 256 {
		return nil, errors.New("randBytes requires a pool of <= 256 items")
	}
	c := len(p)
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	// Pick items randomly out of `p`. Because it's possible that
	// `len(p) < size(byte)`, use remainder in next iteration to ensure all
	// bytes have an equal chance of being selected.
	j := 0 // reservoir
	for i := 0; i < n; i++ {
		bb := int(b[i])
		b[i] = p[(j+bb)%c]
		j += (c + (c-bb)%c) % c
	}
	return b, nil
}
