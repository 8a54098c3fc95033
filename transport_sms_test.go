package logincode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMSTransport(t *testing.T) {
	var got smsMessage
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	tr := NewSMSTransport(srv.URL, "sekret")
	err := tr.Send(context.Background(), "123456", "a@b.com", "+15550100")
	assert.NoError(t, err)
	assert.Equal(t, "+15550100", got.To)
	assert.Equal(t, "Your secret login code: 123456", got.Message)
	assert.Equal(t, "Bearer sekret", auth)
}

func TestSMSTransportMessageFunc(t *testing.T) {
	var got smsMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	tr := NewSMSTransport(srv.URL, "")
	tr.MessageFunc = func(code string) string { return "PIN " + code }
	assert.NoError(t, tr.Send(context.Background(), "654321", "a@b.com", "+15550100"))
	assert.Equal(t, "PIN 654321", got.Message)
}

func TestSMSTransportGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewSMSTransport(srv.URL, "")
	err := tr.Send(context.Background(), "123456", "a@b.com", "+15550100")
	assert.Error(t, err)
}
