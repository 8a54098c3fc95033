package logincode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SMSTransport delivers a secret login code as a text message through an
// HTTP SMS gateway. The gateway is expected to accept a JSON POST of the
// form {"to": ..., "message": ...} and answer 2xx on acceptance.
type SMSTransport struct {
	// Endpoint is the gateway URL messages are POSTed to.
	Endpoint string
	// APIKey, when set, is sent as a bearer token.
	APIKey string
	// Client is the HTTP client used; http.DefaultClient when nil.
	Client *http.Client
	// MessageFunc renders the message body for a code. A default message
	// is used when nil.
	MessageFunc func(code string) string
}

type smsMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// NewSMSTransport returns a transport that posts messages to the given
// gateway endpoint.
func NewSMSTransport(endpoint, apiKey string) *SMSTransport {
	return &SMSTransport{
		Endpoint: endpoint,
		APIKey:   apiKey,
	}
}

// Send delivers the code to the recipient's phone number. A non-2xx gateway
// response is an error; the code must not be presumed delivered.
func (t *SMSTransport) Send(ctx context.Context, code, user, recipient string) error {
	msg := "Your secret login code: " + code
	if t.MessageFunc != nil {
		msg = t.MessageFunc(code)
	}

	body, err := json.Marshal(smsMessage{To: recipient, Message: msg})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint,
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.APIKey)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned %s", resp.Status)
	}
	return nil
}
