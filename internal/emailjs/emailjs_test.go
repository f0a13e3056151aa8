package emailjs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostsTemplatePayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	sender := NewSender(Credentials{
		ServiceID:  "service_x",
		TemplateID: "template_y",
		PublicKey:  "pub",
	}, WithEndpoint(srv.URL))

	err := sender.Send(context.Background(), map[string]string{
		"from_name": "A",
		"message":   "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "service_x", got["service_id"])
	assert.Equal(t, "template_y", got["template_id"])
	assert.Equal(t, "pub", got["user_id"])
	_, hasToken := got["accessToken"]
	assert.False(t, hasToken, "empty private key must be omitted")

	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", params["from_name"])
	assert.Equal(t, "hi", params["message"])
}

func TestSendIncludesPrivateKey(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	sender := NewSender(Credentials{PrivateKey: "secret"}, WithEndpoint(srv.URL))
	require.NoError(t, sender.Send(context.Background(), nil))
	assert.Equal(t, "secret", got.AccessToken)
}

func TestSendReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	sender := NewSender(Credentials{}, WithEndpoint(srv.URL))
	err := sender.Send(context.Background(), map[string]string{})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Equal(t, "The Public Key is invalid", statusErr.Body)
}

func TestSendReturnsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	sender := NewSender(Credentials{}, WithEndpoint(url))
	assert.Error(t, sender.Send(context.Background(), nil))
}

func TestOptionsIgnoreZeroValues(t *testing.T) {
	sender := NewSender(Credentials{}, WithEndpoint(""), WithHTTPClient(nil))
	assert.Equal(t, DefaultEndpoint, sender.endpoint)
	assert.NotNil(t, sender.client)
}
