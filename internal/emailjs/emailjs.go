package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Credentials identify the EmailJS service, template and account used to
// deliver a message. PrivateKey is only needed when the account requires
// it for non-browser callers.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

type Sender struct {
	creds    Credentials
	endpoint string
	client   *http.Client
}

type Option func(*Sender)

func WithEndpoint(endpoint string) Option {
	return func(s *Sender) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.client = client
		}
	}
}

func NewSender(creds Credentials, options ...Option) *Sender {
	s := &Sender{
		creds:    creds,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Send delivers one templated email. Any non-2xx response is an error.
func (s *Sender) Send(ctx context.Context, params map[string]string) error {
	payload := sendRequest{
		ServiceID:      s.creds.ServiceID,
		TemplateID:     s.creds.TemplateID,
		UserID:         s.creds.PublicKey,
		AccessToken:    s.creds.PrivateKey,
		TemplateParams: params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("emailjs error: %d %s", e.Code, e.Body)
}
