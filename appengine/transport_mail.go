package appengine

import (
	"context"

	"google.golang.org/appengine/mail"
)

// MailTransport sends secret login codes via the mail service.
type MailTransport struct {
	// MessageFunc should return a `mail.Message` for the given recipient
	// and code.
	MessageFunc func(ctx context.Context, code, user, recipient string) (*mail.Message, error)
}

// Send mails the secret login code to the specified recipient.
func (t MailTransport) Send(ctx context.Context, code, user, recipient string) error {
	msg, err := t.MessageFunc(ctx, code, user, recipient)
	if err != nil {
		return err
	}
	return mail.Send(ctx, msg)
}
