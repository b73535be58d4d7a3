package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultPayamakBaseURL = "https://rest.payamak-panel.com/api/SendSMS"

// ErrPayamakCredentialsRequired is returned when Username/Password are missing.
var ErrPayamakCredentialsRequired = errors.New("sms: payamak username and password are required")

// Payamak is an SMS implementation backed by the payamak-panel REST gateway.
//
// It uses the shared service-number endpoint (BaseServiceNumber), which sends
// the message body through a pre-approved template.
type Payamak struct {
	baseURL  string
	username string
	password string
	bodyID   int64
	client   *http.Client
}

// PayamakConfig configures the Payamak implementation.
type PayamakConfig struct {
	// BaseURL overrides the gateway address (useful for tests).
	BaseURL string
	// Username is the panel account username.
	Username string
	// Password is the panel account password.
	Password string
	// BodyID is the approved template ID for service-number delivery.
	BodyID int64
	// Timeout bounds a single HTTP call.
	Timeout time.Duration
}

type payamakRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Text     string `json:"text"`
	To       string `json:"to"`
	BodyID   int64  `json:"bodyId"`
}

type payamakResponse struct {
	Value        string `json:"Value"`
	RetStatus    int    `json:"RetStatus"`
	StrRetStatus string `json:"StrRetStatus"`
}

// NewPayamak constructs a Payamak SMS sender.
func NewPayamak(cfg PayamakConfig) (*Payamak, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrPayamakCredentialsRequired
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultPayamakBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Payamak{
		baseURL:  baseURL,
		username: cfg.Username,
		password: cfg.Password,
		bodyID:   cfg.BodyID,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Send delivers a message through the gateway.
func (p *Payamak) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(payamakRequest{
		Username: p.username,
		Password: p.password,
		Text:     msg.Body,
		To:       msg.To,
		BodyID:   p.bodyID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/BaseServiceNumber", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer func() {
		//nolint:errcheck // best effort
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status %s", ErrDeliveryFailed, resp.Status)
	}

	var out payamakResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if out.RetStatus != 1 {
		return fmt.Errorf("%w: gateway returned %q", ErrDeliveryFailed, out.StrRetStatus)
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (p *Payamak) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
