package logincode

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Challenge names as they appear on the wire. CustomChallenge is the name the
// identity provider assigns to every round of this protocol; a session round
// bearing any other name did not come from us.
const (
	CustomChallenge = "CUSTOM_CHALLENGE"

	ChallengeChooseMedium      = "CHOOSE_EMAIL_OR_SMS"
	ChallengeProvideSecretCode = "PROVIDE_SECRET_CODE"
)

// Delivery media a user may choose from.
const (
	MediumEmail = "email"
	MediumSMS   = "sms"
)

var (
	ErrUnknownChallenge = errors.New("unknown challenge in metadata")
	ErrEmptyMetadata    = errors.New("round has no challenge metadata")
)

// Metadata is the tagged challenge descriptor carried in each session round.
// It has exactly two variants: a bare CHOOSE_EMAIL_OR_SMS tag, and
// PROVIDE_SECRET_CODE with the expected code (and optionally the medium it
// was delivered over).
type Metadata struct {
	Challenge       string `json:"challenge"`
	SecretLoginCode string `json:"secretLoginCode,omitempty"`
	Medium          string `json:"medium,omitempty"`
}

// ParseMetadata decodes the serialized metadata of a round. Anything other
// than the two known variants is an error; a stage must abort rather than
// guess at a challenge it does not recognise.
func ParseMetadata(s string) (Metadata, error) {
	if s == "" {
		return Metadata{}, ErrEmptyMetadata
	}
	var m Metadata
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return Metadata{}, fmt.Errorf("malformed challenge metadata: %w", err)
	}
	switch m.Challenge {
	case ChallengeChooseMedium, ChallengeProvideSecretCode:
		return m, nil
	default:
		return Metadata{}, fmt.Errorf("%w: %q", ErrUnknownChallenge, m.Challenge)
	}
}

// Encode serializes the metadata for storage in a session round.
func (m Metadata) Encode() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Public returns a copy safe to expose to the client: the secret code is
// stripped, the tag and medium remain.
func (m Metadata) Public() Metadata {
	m.SecretLoginCode = ""
	return m
}
