package sms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func payamakServer(t *testing.T, status int, resp payamakResponse) (*httptest.Server, *payamakRequest) {
	t.Helper()

	var got payamakRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/BaseServiceNumber" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		w.WriteHeader(status)
		//nolint:errcheck // test server
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv, &got
}

func TestPayamakRequiresCredentials(t *testing.T) {
	if _, err := NewPayamak(PayamakConfig{}); !errors.Is(err, ErrPayamakCredentialsRequired) {
		t.Fatalf("expected ErrPayamakCredentialsRequired, got %v", err)
	}
}

func TestPayamakSend(t *testing.T) {
	srv, got := payamakServer(t, http.StatusOK, payamakResponse{RetStatus: 1})

	p, err := NewPayamak(PayamakConfig{BaseURL: srv.URL, Username: "user", Password: "pass", BodyID: 77})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.Send(context.Background(), Message{To: "09123456789", Body: "123456"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.To != "09123456789" || got.Text != "123456" || got.BodyID != 77 {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestPayamakSendGatewayRejects(t *testing.T) {
	srv, _ := payamakServer(t, http.StatusOK, payamakResponse{RetStatus: 11, StrRetStatus: "InvalidReceiver"})

	p, err := NewPayamak(PayamakConfig{BaseURL: srv.URL, Username: "user", Password: "pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = p.Send(context.Background(), Message{To: "09123456789", Body: "123456"})
	if !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("expected ErrDeliveryFailed, got %v", err)
	}
}

func TestPayamakSendBadStatus(t *testing.T) {
	srv, _ := payamakServer(t, http.StatusBadGateway, payamakResponse{})

	p, err := NewPayamak(PayamakConfig{BaseURL: srv.URL, Username: "user", Password: "pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = p.Send(context.Background(), Message{To: "09123456789", Body: "123456"})
	if !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("expected ErrDeliveryFailed, got %v", err)
	}
}
