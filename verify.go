package logincode

import "crypto/subtle"

// Verify is the verification stage: it judges a submitted answer against the
// private parameters of the challenge that was posed. It is total and fails
// safe: if the challenge carried no expected code there is nothing to verify
// and the answer is wrong.
//
// The comparison is exact; no trimming or case folding. Constant-time
// comparison avoids leaking the mismatch position.
func Verify(privateParameters map[string]string, answer string) bool {
	expected, ok := privateParameters[ParamSecretLoginCode]
	if !ok || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(answer), []byte(expected)) == 1
}
