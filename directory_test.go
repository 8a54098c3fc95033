package logincode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemDirectory(t *testing.T) {
	d := NewMemDirectory()

	_, err := d.Attributes(nil, "a@b.com")
	assert.Equal(t, ErrUserNotFound, err)

	attrs := map[string]string{AttrEmail: "a@b.com"}
	assert.NoError(t, d.Create(nil, "a@b.com", attrs, true))
	assert.Equal(t, ErrUserExists, d.Create(nil, "a@b.com", attrs, true))

	got, err := d.Attributes(nil, "a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, attrs, got)

	// The directory holds its own copy
	got[AttrEmail] = "mutated"
	again, err := d.Attributes(nil, "a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", again[AttrEmail])

	// Unconfirmed users cannot be looked up for sign-in
	assert.NoError(t, d.Create(nil, "held@b.com", attrs, false))
	_, err = d.Attributes(nil, "held@b.com")
	assert.Equal(t, ErrUserNotConfirmed, err)
}
