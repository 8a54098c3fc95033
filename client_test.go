package logincode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSignIn(t *testing.T) {
	f, email, _ := newTestFlow(t, "123456")
	c := NewClient(f)
	ctx := context.Background()

	assert.False(t, c.IsAuthenticated(ctx))

	ch, err := c.SignIn(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, ChallengeChooseMedium, ch)

	assert.NoError(t, c.ChooseMedium(ctx, MediumEmail))
	assert.Equal(t, ChallengeProvideSecretCode,
		c.ChallengeParameters()[ParamChallenge])
	assert.Equal(t, 1, email.sends)

	ok, err := c.SubmitCode(ctx, email.code)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.IsAuthenticated(ctx))
	assert.NotEmpty(t, c.Token())

	details, err := c.GetUserDetails(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", details[AttrEmail])

	c.SignOut()
	assert.False(t, c.IsAuthenticated(ctx))
	assert.Empty(t, c.Token())
	_, err = c.GetUserDetails(ctx)
	assert.ErrorIs(t, err, ErrTokenNotValid)
}

func TestClientWrongCode(t *testing.T) {
	f, email, _ := newTestFlow(t, "123456")
	c := NewClient(f)
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.NoError(t, c.ChooseMedium(ctx, MediumEmail))

	// A wrong code is not authentication, but not the end either
	ok, err := c.SubmitCode(ctx, "000000")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ChallengeProvideSecretCode,
		c.ChallengeParameters()[ParamChallenge])

	ok, err = c.SubmitCode(ctx, email.code)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestClientDenied(t *testing.T) {
	f, _, _ := newTestFlow(t, "123456")
	c := NewClient(f)
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.NoError(t, c.ChooseMedium(ctx, MediumEmail))

	for i := 0; i < 3; i++ {
		ok, err := c.SubmitCode(ctx, "000000")
		assert.NoError(t, err)
		assert.False(t, ok)
	}

	// Denied: the attempt is over and the client knows nothing more
	assert.Nil(t, c.ChallengeParameters())
	assert.False(t, c.IsAuthenticated(ctx))
	_, err = c.SubmitCode(ctx, "123456")
	assert.ErrorIs(t, err, ErrNoAttempt)
}

func TestClientNoAttempt(t *testing.T) {
	f, _, _ := newTestFlow(t, "123456")
	c := NewClient(f)
	ctx := context.Background()

	assert.ErrorIs(t, c.ChooseMedium(ctx, MediumEmail), ErrNoAttempt)
	_, err := c.SubmitCode(ctx, "123456")
	assert.ErrorIs(t, err, ErrNoAttempt)
}

func TestClientSignUp(t *testing.T) {
	f, email, _ := newTestFlow(t, "123456")
	c := NewClient(f)
	ctx := context.Background()

	err := c.SignUp(ctx, "new@b.com", map[string]string{
		AttrEmail: "new@b.com",
		"name":    "New User",
	})
	assert.NoError(t, err)

	ch, err := c.SignIn(ctx, "new@b.com")
	assert.NoError(t, err)
	assert.Equal(t, ChallengeChooseMedium, ch)

	assert.NoError(t, c.ChooseMedium(ctx, MediumEmail))
	ok, err := c.SubmitCode(ctx, email.code)
	assert.NoError(t, err)
	assert.True(t, ok)
}
