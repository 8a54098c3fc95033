package logincode

import (
	"context"
	"fmt"
)

// Keys used in the public/private challenge parameter maps exchanged with
// the identity provider.
const (
	ParamChallenge       = "challenge"
	ParamMedium          = "medium"
	ParamSecretLoginCode = "secretLoginCode"
)

// User attribute keys, as supplied by the identity record.
const (
	AttrEmail       = "email"
	AttrPhoneNumber = "phone_number"
)

// ChallengeResponse is the issuance stage's output: the parameters exposed to
// the client, the parameters retained by the runtime for verification, and
// the serialized metadata to append to the next session round.
type ChallengeResponse struct {
	PublicParameters  map[string]string
	PrivateParameters map[string]string
	ChallengeMetadata string
}

// Issuer is the challenge-issuance stage. It decides which challenge to pose
// next and, when a fresh secret code is issued, delivers it over the chosen
// medium's transport.
type Issuer struct {
	Transports map[string]Transport
	Generator  CodeGenerator
}

// NewIssuer returns an Issuer using the given code generator. Transports for
// each medium are registered with SetTransport.
func NewIssuer(g CodeGenerator) *Issuer {
	return &Issuer{
		Transports: make(map[string]Transport),
		Generator:  g,
	}
}

// SetTransport registers the transport used to deliver codes over the named
// medium ("email" or "sms").
func (i *Issuer) SetTransport(medium string, t Transport) {
	i.Transports[medium] = t
}

// Create produces the next challenge for the attempt.
//
// On the first round it asks the user to choose a delivery medium. Once a
// valid medium hint arrives it generates a fresh secret code, delivers it to
// the matching user attribute, and poses the code challenge. If the previous
// round was already a code challenge (the user answered incorrectly and the
// decision stage chose to continue), the same code is posed again without a
// new delivery. A missing or unrecognised medium hint re-asks the medium
// question; that round does not count against the retry budget.
//
// A delivery failure is fatal for the round: no challenge is considered
// issued.
func (i *Issuer) Create(ctx context.Context, session Session, clientMetadata, userAttributes map[string]string) (*ChallengeResponse, error) {
	last, ok := session.Last()
	if !ok {
		// First invocation: a dummy challenge that lets the client answer
		// with its medium choice in the client metadata.
		return chooseMediumResponse()
	}

	m, err := ParseMetadata(last.ChallengeMetadata)
	if err != nil {
		return nil, err
	}

	switch m.Challenge {
	case ChallengeChooseMedium:
		medium := clientMetadata[ParamMedium]
		if medium != MediumEmail && medium != MediumSMS {
			// No valid choice was made; ask again.
			return chooseMediumResponse()
		}
		return i.newSecretCodeResponse(ctx, medium, userAttributes)

	case ChallengeProvideSecretCode:
		// The user got the code wrong; give them another chance at the
		// code already sent.
		return existingSecretCodeResponse(m.SecretLoginCode)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChallenge, m.Challenge)
	}
}

func chooseMediumResponse() (*ChallengeResponse, error) {
	m := Metadata{Challenge: ChallengeChooseMedium}
	enc, err := m.Encode()
	if err != nil {
		return nil, err
	}
	return &ChallengeResponse{
		PublicParameters:  map[string]string{ParamChallenge: ChallengeChooseMedium},
		PrivateParameters: map[string]string{},
		ChallengeMetadata: enc,
	}, nil
}

// newSecretCodeResponse generates a fresh code, delivers it over the chosen
// medium, and poses the code challenge. Exactly one message is sent.
func (i *Issuer) newSecretCodeResponse(ctx context.Context, medium string, userAttributes map[string]string) (*ChallengeResponse, error) {
	t, ok := i.Transports[medium]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoTransport, medium)
	}

	code, err := i.Generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	recipient := userAttributes[AttrEmail]
	if medium == MediumSMS {
		recipient = userAttributes[AttrPhoneNumber]
	}
	if err := t.Send(ctx, code, userAttributes[AttrEmail], recipient); err != nil {
		return nil, fmt.Errorf("delivering secret code via %s: %w", medium, err)
	}

	m := Metadata{
		Challenge:       ChallengeProvideSecretCode,
		SecretLoginCode: code,
		Medium:          medium,
	}
	enc, err := m.Encode()
	if err != nil {
		return nil, err
	}
	return &ChallengeResponse{
		PublicParameters: map[string]string{
			ParamChallenge: ChallengeProvideSecretCode,
			ParamMedium:    medium,
		},
		PrivateParameters: map[string]string{ParamSecretLoginCode: code},
		ChallengeMetadata: enc,
	}, nil
}

// existingSecretCodeResponse re-poses the code issued in the previous round.
// No message is sent; the user already has the code.
func existingSecretCodeResponse(code string) (*ChallengeResponse, error) {
	m := Metadata{
		Challenge:       ChallengeProvideSecretCode,
		SecretLoginCode: code,
	}
	enc, err := m.Encode()
	if err != nil {
		return nil, err
	}
	return &ChallengeResponse{
		PublicParameters:  map[string]string{ParamChallenge: ChallengeProvideSecretCode},
		PrivateParameters: map[string]string{ParamSecretLoginCode: code},
		ChallengeMetadata: enc,
	}, nil
}
