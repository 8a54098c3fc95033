package logincode

// Round is one challenge/response exchange within an attempt, as recorded by
// the identity provider. ChallengeMetadata is the serialized Metadata of the
// challenge that was posed; ChallengeResult is the verification stage's
// judgement of the user's answer.
type Round struct {
	ChallengeName     string `json:"challengeName"`
	ChallengeResult   bool   `json:"challengeResult"`
	ChallengeMetadata string `json:"challengeMetadata,omitempty"`
}

// Session is the ordered history of all rounds in the current attempt. It is
// owned by the caller; stages only read it.
type Session []Round

// Last returns the most recent round and true, or a zero round and false if
// the session is empty.
func (s Session) Last() (Round, bool) {
	if len(s) == 0 {
		return Round{}, false
	}
	return s[len(s)-1], true
}

// countSecretCodeRounds returns how many rounds posed a PROVIDE_SECRET_CODE
// challenge. This is the retry counter: each such round is one chance to
// enter the code, and the decision stage denies once it reaches maxCodeTries.
func countSecretCodeRounds(s Session) (int, error) {
	n := 0
	for _, r := range s {
		m, err := ParseMetadata(r.ChallengeMetadata)
		if err != nil {
			return 0, err
		}
		if m.Challenge == ChallengeProvideSecretCode {
			n++
		}
	}
	return n, nil
}
