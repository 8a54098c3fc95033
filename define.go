package logincode

// maxCodeTries is how many times a user may attempt the secret code within a
// single sign-in attempt. The same code is kept across tries; once the budget
// is spent the attempt is denied.
const maxCodeTries = 3

// Decision is the outcome of the decision stage for one round, in the shape
// the identity provider expects back: either issue tokens, fail the attempt,
// or pose the named challenge again.
type Decision struct {
	IssueTokens        bool   `json:"issueTokens"`
	FailAuthentication bool   `json:"failAuthentication"`
	ChallengeName      string `json:"challengeName,omitempty"`
}

func allow() Decision {
	return Decision{IssueTokens: true}
}

func deny() Decision {
	return Decision{FailAuthentication: true}
}

func challenge() Decision {
	return Decision{ChallengeName: CustomChallenge}
}

// Define is the decision stage: given the session so far, decide whether to
// continue with another challenge, allow the attempt, or deny it. It is a
// pure function of the session; calling it again with the same session yields
// the same decision.
//
// An error is returned only for malformed session metadata, which means the
// history cannot be trusted and the round must abort.
func Define(session Session) (Decision, error) {
	if len(session) == 0 {
		// The attempt just started; pose the first challenge.
		return challenge(), nil
	}

	// Only rounds of this protocol are acceptable; any foreign challenge
	// type in the history fails the attempt outright.
	for _, r := range session {
		if r.ChallengeName != CustomChallenge {
			return deny(), nil
		}
	}

	// A correct answer to a secret-code challenge wins, regardless of any
	// earlier failed tries.
	last, _ := session.Last()
	m, err := ParseMetadata(last.ChallengeMetadata)
	if err != nil {
		return Decision{}, err
	}
	if m.Challenge == ChallengeProvideSecretCode && last.ChallengeResult {
		return allow(), nil
	}

	n, err := countSecretCodeRounds(session)
	if err != nil {
		return Decision{}, err
	}
	if n >= maxCodeTries {
		return deny(), nil
	}

	return challenge(), nil
}
