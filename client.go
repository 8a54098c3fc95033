package logincode

import (
	"context"
	"errors"
)

// DummyAnswer is submitted when answering the choose-medium challenge; the
// real payload travels in the client metadata.
const DummyAnswer = "__dummy__"

var ErrNoAttempt = errors.New("no sign-in attempt in progress")

// Client exposes the challenge protocol as a simple three-call sequence:
// SignIn, ChooseMedium, SubmitCode. It holds no authentication logic of its
// own; it relays calls to a Flow and keeps track of the current attempt and,
// eventually, the issued token.
//
// A Client tracks a single user's sign-in and is not safe for concurrent use.
type Client struct {
	flow      *Flow
	attemptID string
	challenge map[string]string
	token     string
}

// NewClient returns a Client relaying to the given Flow.
func NewClient(f *Flow) *Client {
	return &Client{flow: f}
}

// SignIn starts a sign-in attempt for the identifier and returns the first
// challenge tag, which is always the medium choice.
func (c *Client) SignIn(ctx context.Context, identifier string) (string, error) {
	res, err := c.flow.InitiateAuth(ctx, identifier)
	if err != nil {
		return "", err
	}
	c.attemptID = res.AttemptID
	c.challenge = res.ChallengeParameters
	c.token = ""
	return res.ChallengeParameters[ParamChallenge], nil
}

// ChooseMedium answers the medium-choice challenge. On success the next
// challenge asks for the secret code that was just delivered.
func (c *Client) ChooseMedium(ctx context.Context, medium string) error {
	if c.attemptID == "" {
		return ErrNoAttempt
	}
	res, err := c.flow.RespondToChallenge(ctx, c.attemptID, DummyAnswer,
		map[string]string{ParamMedium: medium})
	if err != nil {
		return err
	}
	c.challenge = res.ChallengeParameters
	return nil
}

// SubmitCode answers the secret-code challenge and reports whether the
// attempt is now authenticated. A false return with nil error means either
// another try is allowed or the attempt was denied; inspect
// ChallengeParameters to tell which.
func (c *Client) SubmitCode(ctx context.Context, code string) (bool, error) {
	if c.attemptID == "" {
		return false, ErrNoAttempt
	}
	res, err := c.flow.RespondToChallenge(ctx, c.attemptID, code, nil)
	if err != nil {
		return false, err
	}
	if res.Authenticated {
		c.token = res.Token
		c.attemptID = ""
		c.challenge = nil
		return true, nil
	}
	if res.Denied {
		c.attemptID = ""
		c.challenge = nil
		return false, nil
	}
	c.challenge = res.ChallengeParameters
	return false, nil
}

// ChallengeParameters returns the public parameters of the challenge
// currently awaiting an answer, if any.
func (c *Client) ChallengeParameters() map[string]string {
	return c.challenge
}

// Token returns the issued token, or "" if not authenticated.
func (c *Client) Token() string {
	return c.token
}

// SignOut discards the current token and any attempt in progress.
func (c *Client) SignOut() {
	c.token = ""
	c.attemptID = ""
	c.challenge = nil
}

// IsAuthenticated reports whether the client holds a currently valid token.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	if c.token == "" {
		return false
	}
	_, err := c.flow.Tokens.Validate(ctx, c.token)
	return err == nil
}

// GetUserDetails returns the signed-in user's attributes.
func (c *Client) GetUserDetails(ctx context.Context) (map[string]string, error) {
	if c.token == "" {
		return nil, ErrTokenNotValid
	}
	return c.flow.UserDetails(ctx, c.token)
}

// SignUp registers a new user with the given attributes.
func (c *Client) SignUp(ctx context.Context, identifier string, attrs map[string]string) error {
	return c.flow.SignUp(ctx, identifier, attrs)
}
