package entity

import (
	"testing"
	"time"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already local", in: "09123456789", want: "09123456789"},
		{name: "trims spaces", in: "  09123456789 ", want: "09123456789"},
		{name: "inner separators", in: "0912 345-6789", want: "09123456789"},
		{name: "plus prefix", in: "+989123456789", want: "09123456789"},
		{name: "double zero prefix", in: "00989123456789", want: "09123456789"},
		{name: "bare country code", in: "989123456789", want: "09123456789"},
		{name: "garbage untouched", in: "hello", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIdentityCodeExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 5 * time.Minute

	issued := now.Add(-ttl)
	ident := Identity{CodeIssuedAt: &issued}
	if ident.CodeExpired(now, ttl) {
		t.Fatal("code issued exactly ttl ago should still be valid")
	}

	issued = now.Add(-ttl - time.Second)
	if !ident.CodeExpired(now, ttl) {
		t.Fatal("code older than ttl should be expired")
	}

	if !(Identity{}).CodeExpired(now, ttl) {
		t.Fatal("identity without issue time should read as expired")
	}
}

func TestIdentityHasPendingCode(t *testing.T) {
	if (Identity{}).HasPendingCode() {
		t.Fatal("empty identity should have no pending code")
	}

	code := "123456"
	if !(Identity{PendingCode: &code}).HasPendingCode() {
		t.Fatal("identity with stored code should have a pending code")
	}

	empty := ""
	if (Identity{PendingCode: &empty}).HasPendingCode() {
		t.Fatal("blank stored code should not count as pending")
	}
}
