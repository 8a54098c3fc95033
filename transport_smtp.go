package logincode

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"time"
)

// ComposerFunc is called when writing the contents of an email, including
// preamble headers.
type ComposerFunc func(ctx context.Context, code, user, recipient string, w io.Writer) error

// Email is a helper for creating multipart (text and html) emails
type Email struct {
	To      string
	Subject string
	Date    time.Time
	bodies  []emailBody
}

type emailBody struct {
	contentType string
	content     string
}

// AddBody adds a content section to the email. The `contentType` should be a
// known type, such as "text/html" or "text/plain". If no `contentType` is
// provided, "text/plain" is used. Sections are emitted in the order they
// were added.
func (e *Email) AddBody(contentType, body string) {
	if contentType == "" {
		contentType = "text/plain"
	}
	e.bodies = append(e.bodies, emailBody{contentType, body})
}

// Write emits the Email to the specified writer.
func (e Email) Write(w io.Writer) (int64, error) {
	return e.Buffer().WriteTo(w)
}

// Bytes returns the contents of the email as a series of bytes.
func (e Email) Bytes() []byte {
	return e.Buffer().Bytes()
}

func (e Email) Buffer() *bytes.Buffer {
	crlf := "\r\n"
	b := bytes.NewBuffer(nil)

	date := e.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	b.WriteString("Date: " + date.Format(time.RFC822) + crlf)
	if e.To != "" {
		b.WriteString("To: " + e.To + crlf)
	}
	if e.Subject != "" {
		b.WriteString("Subject: " + e.Subject + crlf)
	}

	if len(e.bodies) <= 1 {
		if len(e.bodies) == 1 {
			b.WriteString("Content-Type: " + e.bodies[0].contentType +
				"; charset=\"UTF-8\";" + crlf)
		}
		b.WriteString(crlf)
		if len(e.bodies) == 1 {
			b.WriteString(e.bodies[0].content + crlf)
		}
		return b
	}

	// Generate boundary to separate sections
	h := md5.New()
	io.WriteString(h, fmt.Sprintf("%d", time.Now().UnixNano()))
	boundary := fmt.Sprintf("%x", h.Sum(nil))

	b.WriteString("Content-Type: multipart/alternative; boundary=" +
		boundary + crlf + crlf)
	for _, body := range e.bodies {
		b.WriteString("--" + boundary + crlf)
		b.WriteString("Content-Type: " + body.contentType +
			"; charset=\"UTF-8\";" + crlf + crlf)
		b.WriteString(body.content + crlf)
	}
	b.WriteString("--" + boundary + "--" + crlf)

	return b
}

// SecretCodeEmail returns a ComposerFunc that writes the standard secret
// login code email, in both plain text and HTML.
func SecretCodeEmail() ComposerFunc {
	return func(ctx context.Context, code, user, recipient string, w io.Writer) error {
		e := Email{
			To:      recipient,
			Subject: "Your secret login code",
		}
		e.AddBody("", "Your secret login code: "+code)
		e.AddBody("text/html",
			"<html><body><p>This is your secret login code:</p><h3>"+
				code+"</h3></body></html>")
		_, err := e.Write(w)
		return err
	}
}

// SMTPTransport delivers a secret login code via e-mail.
type SMTPTransport struct {
	UseSSL   bool
	auth     smtp.Auth
	from     string
	addr     string
	composer ComposerFunc
}

// NewSMTPTransport returns a new transport capable of sending emails via
// SMTP. `addr` should be in the form "host:port" of the email server.
func NewSMTPTransport(addr, from string, auth smtp.Auth, c ComposerFunc) *SMTPTransport {
	return &SMTPTransport{
		UseSSL:   false,
		addr:     addr,
		auth:     auth,
		from:     from,
		composer: c,
	}
}

// Send sends an email to the email address specified in `recipient`,
// containing the secret login code provided.
func (t *SMTPTransport) Send(ctx context.Context, code, user, recipient string) error {
	host, _, _ := net.SplitHostPort(t.addr)

	// If UseSSL is true, need to ensure the connection is made over a
	// TLS channel.
	var c *smtp.Client
	if t.UseSSL {
		// Connect with SSL handshake
		tlscfg := &tls.Config{
			ServerName: host,
		}
		conn, err := tls.Dial("tcp", t.addr, tlscfg)
		if err != nil {
			return err
		}
		if c, err = smtp.NewClient(conn, host); err != nil {
			conn.Close()
			return err
		}
	} else {
		// Not using SSL handshake
		cl, err := smtp.Dial(t.addr)
		if err != nil {
			return err
		}
		c = cl
	}
	defer c.Close()

	// Use STARTTLS if available
	if ok, _ := c.Extension("STARTTLS"); ok {
		config := &tls.Config{ServerName: host}
		if err := c.StartTLS(config); err != nil {
			return err
		}
	}

	// Use auth credentials if supported and provided
	if ok, _ := c.Extension("AUTH"); ok && t.auth != nil {
		if err := c.Auth(t.auth); err != nil {
			return err
		}
	}

	// Compose email
	if err := c.Mail(t.from); err != nil {
		return err
	}
	if err := c.Rcpt(recipient); err != nil {
		return err
	}

	// Write body
	w, err := c.Data()
	if err != nil {
		return err
	}

	// Emit message body
	if err := t.composer(ctx, code, user, recipient, w); err != nil {
		return err
	}

	// Close writer
	if err := w.Close(); err != nil {
		return err
	}

	// Succeeded; quit nicely
	return c.Quit()
}
