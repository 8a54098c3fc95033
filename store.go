package logincode

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAttemptNotFound = errors.New("the attempt does not exist")
	ErrAttemptExpired  = errors.New("the attempt has expired")
	ErrNoTransport     = errors.New("no transport registered for medium")
)

// AttemptState is everything the runtime persists between stage invocations
// of one sign-in attempt: who is signing in, the session history so far, and
// the challenge currently awaiting an answer. The pending private parameters
// hold the secret code and must never be sent to the client.
type AttemptState struct {
	Username   string            `json:"username"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Session    Session           `json:"session"`

	PendingPublic   map[string]string `json:"pendingPublic,omitempty"`
	PendingPrivate  map[string]string `json:"pendingPrivate,omitempty"`
	PendingMetadata string            `json:"pendingMetadata,omitempty"`
}

// SetPending records the challenge just issued as the one awaiting an answer.
func (a *AttemptState) SetPending(cr *ChallengeResponse) {
	a.PendingPublic = cr.PublicParameters
	a.PendingPrivate = cr.PrivateParameters
	a.PendingMetadata = cr.ChallengeMetadata
}

// SessionStore is a storage mechanism for in-flight attempt state, keyed by
// an opaque attempt ID. Entries expire after their TTL; expiry of a pending
// challenge simply destroys the attempt.
type SessionStore interface {
	// Put stores the attempt state with the given expiry time.
	Put(ctx context.Context, id string, state AttemptState, ttl time.Duration) error
	// Get returns the attempt state, or ErrAttemptNotFound.
	Get(ctx context.Context, id string) (AttemptState, error)
	// Delete removes the attempt.
	Delete(ctx context.Context, id string) error
}
