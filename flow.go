package logincode

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAttemptDenied is returned when an attempt ends in denial for any
// internal reason. Callers are told no more than that; the state-machine's
// internals never leak to the client.
var ErrAttemptDenied = errors.New("authentication denied")

// DefaultAttemptTTL is how long a pending attempt may sit between
// invocations before it expires.
const DefaultAttemptTTL = 15 * time.Minute

// Flow is the identity-provider harness: it drives the three protocol stages
// across invocations, persisting the session history and the pending
// challenge in a SessionStore between calls. The stages themselves stay
// stateless; Flow owns the threading.
type Flow struct {
	// Issuer produces and delivers challenges.
	Issuer *Issuer
	// Tokens mints the credential on a successful attempt.
	Tokens TokenIssuer
	// PreSignUp runs before SignUp creates a user. Defaults to AutoConfirm.
	PreSignUp PreSignUpHook
	// AttemptTTL bounds how long an attempt may remain pending. Defaults to
	// DefaultAttemptTTL.
	AttemptTTL time.Duration

	store SessionStore
	users Directory
}

// NewFlow assembles a Flow from its collaborators.
func NewFlow(store SessionStore, users Directory, issuer *Issuer, tokens TokenIssuer) *Flow {
	return &Flow{
		Issuer:    issuer,
		Tokens:    tokens,
		PreSignUp: AutoConfirm,
		store:     store,
		users:     users,
	}
}

// AuthResult is the outcome of one Flow invocation: either another challenge
// to put to the user, or a terminal allow/deny.
type AuthResult struct {
	AttemptID           string
	Authenticated       bool
	Denied              bool
	Token               string
	ChallengeParameters map[string]string
}

func (f *Flow) ttl() time.Duration {
	if f.AttemptTTL > 0 {
		return f.AttemptTTL
	}
	return DefaultAttemptTTL
}

// InitiateAuth starts a new attempt for the given user and returns the first
// challenge (asking the user to choose a delivery medium).
func (f *Flow) InitiateAuth(ctx context.Context, username string) (*AuthResult, error) {
	attrs, err := f.users.Attributes(ctx, username)
	if err != nil {
		return nil, err
	}

	session := Session{}
	d, err := Define(session)
	if err != nil {
		return nil, err
	}
	if d.ChallengeName != CustomChallenge {
		return nil, ErrAttemptDenied
	}

	cr, err := f.Issuer.Create(ctx, session, nil, attrs)
	if err != nil {
		return nil, err
	}

	state := AttemptState{
		Username:   username,
		Attributes: attrs,
		Session:    session,
	}
	state.SetPending(cr)

	id := uuid.NewString()
	if err := f.store.Put(ctx, id, state, f.ttl()); err != nil {
		return nil, err
	}
	return &AuthResult{
		AttemptID:           id,
		ChallengeParameters: cr.PublicParameters,
	}, nil
}

// RespondToChallenge submits the user's answer to the pending challenge. The
// answer is judged, the round recorded, and the decision stage consulted: the
// result is a token, a denial, or the next challenge.
//
// Delivery failures while issuing the next challenge are returned as errors
// and leave the attempt as it was; internal protocol violations surface as a
// plain denial.
func (f *Flow) RespondToChallenge(ctx context.Context, attemptID, answer string, clientMetadata map[string]string) (*AuthResult, error) {
	state, err := f.store.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	correct := Verify(state.PendingPrivate, answer)
	session := append(state.Session, Round{
		ChallengeName:     CustomChallenge,
		ChallengeResult:   correct,
		ChallengeMetadata: state.PendingMetadata,
	})

	d, err := Define(session)
	if err != nil {
		// The recorded history cannot be trusted; end the attempt.
		f.store.Delete(ctx, attemptID)
		return &AuthResult{AttemptID: attemptID, Denied: true}, nil
	}

	switch {
	case d.IssueTokens:
		f.store.Delete(ctx, attemptID)
		token, err := f.Tokens.Issue(ctx, state.Username)
		if err != nil {
			return nil, err
		}
		return &AuthResult{
			AttemptID:     attemptID,
			Authenticated: true,
			Token:         token,
		}, nil

	case d.FailAuthentication:
		// A normal terminal outcome, not an error.
		f.store.Delete(ctx, attemptID)
		return &AuthResult{AttemptID: attemptID, Denied: true}, nil
	}

	cr, err := f.Issuer.Create(ctx, session, clientMetadata, state.Attributes)
	if err != nil {
		// No challenge was issued; the attempt stays as it was so the
		// caller may retry the invocation.
		return nil, err
	}

	state.Session = session
	state.SetPending(cr)
	if err := f.store.Put(ctx, attemptID, state, f.ttl()); err != nil {
		return nil, err
	}
	return &AuthResult{
		AttemptID:           attemptID,
		ChallengeParameters: cr.PublicParameters,
	}, nil
}

// SignUp registers a new user after running the pre-sign-up hook.
func (f *Flow) SignUp(ctx context.Context, username string, attrs map[string]string) error {
	hook := f.PreSignUp
	if hook == nil {
		hook = AutoConfirm
	}
	req := SignUpRequest{Username: username, Attributes: attrs}
	resp, err := hook(ctx, &req)
	if err != nil {
		return err
	}
	return f.users.Create(ctx, req.Username, req.Attributes, resp.AutoConfirm)
}

// UserDetails validates a token and returns the attributes of the user it
// was issued to.
func (f *Flow) UserDetails(ctx context.Context, token string) (map[string]string, error) {
	username, err := f.Tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	return f.users.Attributes(ctx, username)
}
