package logincode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHMACIssuer(t *testing.T) {
	i := NewHMACIssuer([]byte("test key"), time.Minute)

	tok, err := i.Issue(nil, "a@b.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	sub, err := i.Validate(nil, tok)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", sub)
}

func TestHMACIssuerRejects(t *testing.T) {
	i := NewHMACIssuer([]byte("test key"), time.Minute)

	_, err := i.Validate(nil, "")
	assert.Equal(t, ErrTokenNotValid, err)

	_, err = i.Validate(nil, "not.a.jwt")
	assert.Equal(t, ErrTokenNotValid, err)

	// Token signed with a different key
	other := NewHMACIssuer([]byte("other key"), time.Minute)
	tok, err := other.Issue(nil, "a@b.com")
	assert.NoError(t, err)
	_, err = i.Validate(nil, tok)
	assert.Equal(t, ErrTokenNotValid, err)
}

func TestHMACIssuerExpiry(t *testing.T) {
	i := NewHMACIssuer([]byte("test key"), -time.Minute)
	tok, err := i.Issue(nil, "a@b.com")
	assert.NoError(t, err)

	_, err = i.Validate(nil, tok)
	assert.Equal(t, ErrTokenNotValid, err)
}
