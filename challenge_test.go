package logincode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetadata(t *testing.T) {
	m, err := ParseMetadata(`{"challenge":"CHOOSE_EMAIL_OR_SMS"}`)
	assert.NoError(t, err)
	assert.Equal(t, ChallengeChooseMedium, m.Challenge)
	assert.Empty(t, m.SecretLoginCode)

	m, err = ParseMetadata(`{"challenge":"PROVIDE_SECRET_CODE","secretLoginCode":"123456","medium":"email"}`)
	assert.NoError(t, err)
	assert.Equal(t, ChallengeProvideSecretCode, m.Challenge)
	assert.Equal(t, "123456", m.SecretLoginCode)
	assert.Equal(t, "email", m.Medium)

	// Unknown variants are an explicit failure, never a fallthrough
	_, err = ParseMetadata(`{"challenge":"SOLVE_CAPTCHA"}`)
	assert.ErrorIs(t, err, ErrUnknownChallenge)

	// Malformed and missing metadata abort
	_, err = ParseMetadata(`{"challenge":`)
	assert.Error(t, err)
	_, err = ParseMetadata("")
	assert.ErrorIs(t, err, ErrEmptyMetadata)
}

func TestMetadataRoundTrip(t *testing.T) {
	m := Metadata{
		Challenge:       ChallengeProvideSecretCode,
		SecretLoginCode: "042042",
		Medium:          "sms",
	}
	enc, err := m.Encode()
	assert.NoError(t, err)

	m2, err := ParseMetadata(enc)
	assert.NoError(t, err)
	assert.Equal(t, m, m2)
}

func TestMetadataPublic(t *testing.T) {
	m := Metadata{
		Challenge:       ChallengeProvideSecretCode,
		SecretLoginCode: "123456",
		Medium:          "email",
	}
	p := m.Public()
	assert.Empty(t, p.SecretLoginCode)
	assert.Equal(t, ChallengeProvideSecretCode, p.Challenge)
	assert.Equal(t, "email", p.Medium)

	// The original is untouched
	assert.Equal(t, "123456", m.SecretLoginCode)

	// The secret must not survive encoding either
	enc, err := p.Encode()
	assert.NoError(t, err)
	assert.NotContains(t, enc, "123456")
}
