package logincode

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrUserNotFound     = errors.New("the user does not exist")
	ErrUserExists       = errors.New("the user already exists")
	ErrUserNotConfirmed = errors.New("the user is not confirmed")
)

// Directory is the identity record collaborator: it answers which delivery
// targets (email address, phone number) a user has, and registers new users.
type Directory interface {
	// Attributes returns the user's attributes, e.g. "email" and
	// "phone_number". Unconfirmed users cannot sign in.
	Attributes(ctx context.Context, username string) (map[string]string, error)
	// Create registers a new user with the given attributes.
	Create(ctx context.Context, username string, attrs map[string]string, confirmed bool) error
}

// SignUpRequest is passed to the pre-sign-up hook, which may amend it before
// the user is created.
type SignUpRequest struct {
	Username   string
	Attributes map[string]string
}

// SignUpResponse tells the registrar what to do with the new user.
type SignUpResponse struct {
	AutoConfirm bool
}

// PreSignUpHook runs before a new user is created.
type PreSignUpHook func(ctx context.Context, req *SignUpRequest) (SignUpResponse, error)

// AutoConfirm is the default pre-sign-up hook: it unconditionally confirms
// every new user, so sign-in is possible immediately after sign-up.
func AutoConfirm(ctx context.Context, req *SignUpRequest) (SignUpResponse, error) {
	return SignUpResponse{AutoConfirm: true}, nil
}

// MemDirectory is an in-memory Directory, suitable for tests and demos.
type MemDirectory struct {
	mut   sync.Mutex
	users map[string]memUser
}

type memUser struct {
	attrs     map[string]string
	confirmed bool
}

// NewMemDirectory creates and returns a new `MemDirectory`.
func NewMemDirectory() *MemDirectory {
	return &MemDirectory{
		users: make(map[string]memUser),
	}
}

func (d *MemDirectory) Attributes(ctx context.Context, username string) (map[string]string, error) {
	d.mut.Lock()
	defer d.mut.Unlock()
	u, ok := d.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	if !u.confirmed {
		return nil, ErrUserNotConfirmed
	}
	attrs := make(map[string]string, len(u.attrs))
	for k, v := range u.attrs {
		attrs[k] = v
	}
	return attrs, nil
}

func (d *MemDirectory) Create(ctx context.Context, username string, attrs map[string]string, confirmed bool) error {
	d.mut.Lock()
	defer d.mut.Unlock()
	if _, ok := d.users[username]; ok {
		return ErrUserExists
	}
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	d.users[username] = memUser{attrs: copied, confirmed: confirmed}
	return nil
}
