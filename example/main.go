package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/canmore/go-logincode"
)

var (
	flow  *logincode.Flow
	store sessions.Store
)

func main() {
	store = sessions.NewCookieStore([]byte("my insecure key!"))

	// Codes are "delivered" to the console for demo purposes; swap in
	// SMTPTransport/SMSTransport for real delivery.
	issuer := logincode.NewIssuer(logincode.NewDigitGenerator(6))
	issuer.SetTransport("email", logincode.LogTransport{
		MessageFunc: func(code, uid string) string {
			return fmt.Sprintf("[email] code for %s is %s", uid, code)
		},
	})
	issuer.SetTransport("sms", logincode.LogTransport{
		MessageFunc: func(code, uid string) string {
			return fmt.Sprintf("[sms] code for %s is %s", uid, code)
		},
	})

	flow = logincode.NewFlow(
		logincode.NewMemStore(),
		logincode.NewMemDirectory(),
		issuer,
		logincode.NewHMACIssuer([]byte("abracadabrawizzy"), time.Hour))

	r := mux.NewRouter()
	r.HandleFunc("/account/signup", signupHandler).Methods("POST")
	r.HandleFunc("/account/signin", signinHandler).Methods("POST")
	r.HandleFunc("/account/medium", mediumHandler).Methods("POST")
	r.HandleFunc("/account/code", codeHandler).Methods("POST")
	r.HandleFunc("/account/signout", signoutHandler).Methods("POST")
	r.HandleFunc("/account/me", meHandler).Methods("GET")

	log.Println("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
