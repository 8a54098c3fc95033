package logincode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieStore keeps attempt state in an encrypted cookie on the user's
// browser, so the server holds no per-attempt state at all. The cookie value
// is authenticated and encrypted; the client cannot read the secret code or
// forge a session history.
type CookieStore struct {
	cs   *securecookie.SecureCookie
	Path string
	Key  string
}

// NewCookieStore creates a new signed and encrypted CookieStore. `authKey`
// is used for HMAC authentication and `encrKey` for encryption of the cookie
// contents.
func NewCookieStore(authKey, encrKey []byte) *CookieStore {
	return &CookieStore{
		Path: "/",
		Key:  "logincode",
		cs:   securecookie.New(authKey, encrKey),
	}
}

type cookieAttempt struct {
	ID      string
	State   AttemptState
	Expires time.Time
}

// Put encrypts and writes the attempt state to the current response.
//
// The cookie is set with an expiry equal to that of the attempt, but the
// expiry *must* be validated on receipt.
//
// This function requires that a ResponseWriter is present in the context.
func (s *CookieStore) Put(ctx context.Context, id string, state AttemptState, ttl time.Duration) error {
	rw, _ := fromContext(ctx)
	if rw == nil {
		return errors.New("context passed to CookieStore.Put does not " +
			"contain a ResponseWriter")
	}

	exp := time.Now().Add(ttl)
	encoded, err := s.cs.Encode(s.Key, cookieAttempt{
		ID:      id,
		State:   state,
		Expires: exp,
	})
	if err != nil {
		return err
	}

	// Emit cookie into response
	http.SetCookie(rw, &http.Cookie{
		Expires:  exp,
		MaxAge:   int(ttl / time.Second),
		Name:     s.Key,
		Value:    encoded,
		Path:     s.Path,
		HttpOnly: true,
	})
	return nil
}

// Get reads the attempt state back from the request cookie, verifying that
// it matches the requested attempt ID and has not expired.
//
// This function requires that a Request is present in the context.
func (s *CookieStore) Get(ctx context.Context, id string) (AttemptState, error) {
	_, req := fromContext(ctx)
	if req == nil {
		return AttemptState{}, errors.New("context passed to CookieStore.Get " +
			"does not contain a Request")
	}

	cookie, err := req.Cookie(s.Key)
	if err != nil {
		return AttemptState{}, ErrAttemptNotFound
	}

	var a cookieAttempt
	if err := s.cs.Decode(s.Key, cookie.Value, &a); err != nil {
		return AttemptState{}, err
	}
	if a.ID != id {
		// Cookie is for a different attempt
		return AttemptState{}, ErrAttemptNotFound
	}
	if time.Now().After(a.Expires) {
		return AttemptState{}, ErrAttemptNotFound
	}
	return a.State, nil
}

// Delete clears the attempt cookie.
//
// This function requires that a ResponseWriter is present in the context.
func (s *CookieStore) Delete(ctx context.Context, id string) error {
	rw, _ := fromContext(ctx)
	if rw == nil {
		return errors.New("context passed to CookieStore.Delete does not " +
			"contain a ResponseWriter")
	}
	http.SetCookie(rw, &http.Cookie{
		MaxAge: -1,
		Name:   s.Key,
		Path:   s.Path,
	})
	return nil
}
