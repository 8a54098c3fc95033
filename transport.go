package logincode

import (
	"context"
	"log"
)

// Transport represents a mechanism that sends a secret login code to a named
// recipient.
type Transport interface {
	// Send instructs the transport to send the given code for the specified
	// user to the given recipient, which could be an email address or a
	// phone number depending on the transport.
	Send(ctx context.Context, code, user, recipient string) error
}

// LogTransport is intended for testing/debugging purposes that simply logs
// the code to the console.
type LogTransport struct {
	MessageFunc func(code, uid string) string
}

func (lt LogTransport) Send(ctx context.Context, code, user, recipient string) error {
	log.Print(lt.MessageFunc(code, user))
	return nil
}
