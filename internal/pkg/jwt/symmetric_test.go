package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{ v string }

func (u fixedUUID) Generate() string { return u.v }

func newTestJWT(t *testing.T, ttl time.Duration) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    []byte(strings.Repeat("s", 64)),
		Issuer:    "test-issuer",
		Audiences: []string{"test-api"},
		TTL:       ttl,
		Clock:     fixedClock{now: time.Now()},
		UUID:      fixedUUID{v: "token-id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}

func TestSymmetricGenerateVerify(t *testing.T) {
	s := newTestJWT(t, 7*24*time.Hour)

	token, err := s.Generate(42, "09123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.UserPhone != "09123456789" {
		t.Fatalf("expected phone claim, got %q", claims.UserPhone)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestSymmetricVerifyExpired(t *testing.T) {
	s := newTestJWT(t, -time.Hour)

	token, err := s.Generate(42, "09123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSymmetricVerifyTampered(t *testing.T) {
	s := newTestJWT(t, time.Hour)

	token, err := s.Generate(42, "09123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := s.Verify(tampered); err == nil {
		t.Fatal("expected verification error for tampered token")
	}
}

func TestSymmetricVerifyWrongSecret(t *testing.T) {
	s := newTestJWT(t, time.Hour)

	other, err := NewHS512(Config{
		Secret:    []byte(strings.Repeat("x", 64)),
		Issuer:    "test-issuer",
		Audiences: []string{"test-api"},
		TTL:       time.Hour,
		Clock:     fixedClock{now: time.Now()},
		UUID:      fixedUUID{v: "token-id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := other.Generate(42, "09123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Verify(token); err == nil {
		t.Fatal("expected verification error for token signed with other key")
	}
}
