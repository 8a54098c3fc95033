/*
`go-logincode` implements passwordless sign-in with one-time secret login
codes, as a pluggable challenge/response state machine: the user picks a
delivery medium (email or SMS), receives a 6-digit code, and enters it to
authenticate. There are no passwords to store.

The protocol is three stateless stages that an identity-provider runtime
invokes once per round, sharing state only through the session history it
threads back in:

    Define(session)                    -> continue, allow or deny
    Issuer.Create(ctx, session, ...)   -> the next challenge (+ delivery)
    Verify(privateParameters, answer)  -> was the answer correct?

The user gets three tries at the same code; a wrong entry re-poses the code
already sent rather than generating a new one. A correct entry allows the
attempt; a third failure denies it.

Most applications will not call the stages directly but use the bundled Flow
harness, which persists session state between invocations and mints a JWT on
success:

    issuer := logincode.NewIssuer(logincode.NewDigitGenerator(6))
    issuer.SetTransport("email", logincode.NewSMTPTransport(
        "mail:25", "noreply@example.com", nil, logincode.SecretCodeEmail()))
    issuer.SetTransport("sms", logincode.NewSMSTransport(
        "https://gateway/send", apiKey))

    flow := logincode.NewFlow(logincode.NewMemStore(),
        directory, issuer, logincode.NewHMACIssuer(key, time.Hour))

The Client type then reduces sign-in to three calls:

    c := logincode.NewClient(flow)
    c.SignIn(ctx, "a@b.com")       // -> "CHOOSE_EMAIL_OR_SMS"
    c.ChooseMedium(ctx, "email")   // code is delivered
    ok, _ := c.SubmitCode(ctx, "123456")

Attempt state can be kept in memory (MemStore), in Redis (RedisStore), or in
an encrypted client-side cookie (CookieStore). A complete web application can
be found in the "example" directory.
*/
package logincode
