package main

import (
	"errors"
	"net/http"

	"github.com/canmore/go-logincode"
)

// signupHandler registers a new user. The pre-sign-up hook auto-confirms, so
// the user can sign in straight away.
func signupHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email       string `json:"email"`
		FullName    string `json:"fullName"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if !readJSON(w, r, &in) {
		return
	}

	attrs := map[string]string{
		"email": in.Email,
		"name":  in.FullName,
	}
	if in.PhoneNumber != "" {
		attrs["phone_number"] = in.PhoneNumber
	}
	if err := flow.SignUp(r.Context(), in.Email, attrs); err != nil {
		if errors.Is(err, logincode.ErrUserExists) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// signinHandler starts an attempt. The first challenge asks the user which
// medium the code should be sent over.
func signinHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if !readJSON(w, r, &in) {
		return
	}

	res, err := flow.InitiateAuth(r.Context(), in.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}

	session, _ := store.Get(r, sessionName)
	session.Values["attempt"] = res.AttemptID
	session.Save(r, w)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"challenge": res.ChallengeParameters,
	})
}

// mediumHandler answers the medium-choice challenge; the code is delivered
// as a side effect and the code challenge comes back.
func mediumHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Medium string `json:"medium"`
	}
	if !readJSON(w, r, &in) {
		return
	}

	session, _ := store.Get(r, sessionName)
	attemptID, _ := session.Values["attempt"].(string)
	if attemptID == "" {
		writeError(w, http.StatusBadRequest, logincode.ErrNoAttempt)
		return
	}

	res, err := flow.RespondToChallenge(r.Context(), attemptID,
		logincode.DummyAnswer, map[string]string{"medium": in.Medium})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"challenge": res.ChallengeParameters,
	})
}

// codeHandler answers the secret-code challenge. On success the session gets
// the issued token; a wrong code returns the challenge again until the
// attempt is denied.
func codeHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code string `json:"code"`
	}
	if !readJSON(w, r, &in) {
		return
	}

	session, _ := store.Get(r, sessionName)
	attemptID, _ := session.Values["attempt"].(string)
	if attemptID == "" {
		writeError(w, http.StatusBadRequest, logincode.ErrNoAttempt)
		return
	}

	res, err := flow.RespondToChallenge(r.Context(), attemptID, in.Code, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	switch {
	case res.Authenticated:
		delete(session.Values, "attempt")
		session.Values["token"] = res.Token
		session.Save(r, w)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": true,
		})
	case res.Denied:
		delete(session.Values, "attempt")
		session.Save(r, w)
		writeError(w, http.StatusForbidden,
			errors.New("authentication denied"))
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
			"challenge":     res.ChallengeParameters,
		})
	}
}

func signoutHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := store.Get(r, sessionName)
	delete(session.Values, "token")
	delete(session.Values, "attempt")
	session.Save(r, w)
	w.WriteHeader(http.StatusNoContent)
}

// meHandler returns the signed-in user's attributes.
func meHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := store.Get(r, sessionName)
	token, _ := session.Values["token"].(string)
	if token == "" {
		writeError(w, http.StatusUnauthorized, logincode.ErrTokenNotValid)
		return
	}

	attrs, err := flow.UserDetails(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	writeJSON(w, http.StatusOK, attrs)
}
