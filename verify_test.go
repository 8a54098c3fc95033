package logincode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	private := map[string]string{ParamSecretLoginCode: "123456"}

	assert.True(t, Verify(private, "123456"))

	// Exact match only: no trimming, padding or case folding
	for _, answer := range []string{
		"",
		"000000",
		"12345",
		"1234567",
		" 123456",
		"123456 ",
		"123457",
	} {
		assert.False(t, Verify(private, answer), "answer %q", answer)
	}
}

func TestVerifyFailsSafe(t *testing.T) {
	// A challenge without an expected code can never verify
	assert.False(t, Verify(nil, "123456"))
	assert.False(t, Verify(map[string]string{}, "123456"))
	assert.False(t, Verify(map[string]string{ParamSecretLoginCode: ""}, ""))
	assert.False(t, Verify(map[string]string{ParamChallenge: ChallengeChooseMedium}, DummyAnswer))
}
