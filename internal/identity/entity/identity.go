package entity

import (
	"strings"
	"time"
)

// Identity is a phone-number account. A row is created on the first code
// request and marked verified after the first successful code check.
type Identity struct {
	ID           int64
	Phone        string
	PendingCode  *string
	CodeIssuedAt *time.Time
	CodeVerified bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPendingCode reports whether a sign-in code is currently stored.
func (i Identity) HasPendingCode() bool {
	return i.PendingCode != nil && *i.PendingCode != ""
}

// PendingCodeValue returns the stored code or an empty string.
func (i Identity) PendingCodeValue() string {
	if i.PendingCode == nil {
		return ""
	}
	return *i.PendingCode
}

// CodeExpired reports whether the pending code was issued more than ttl ago.
func (i Identity) CodeExpired(now time.Time, ttl time.Duration) bool {
	if i.CodeIssuedAt == nil {
		return true
	}
	return now.Sub(*i.CodeIssuedAt) > ttl
}

// PendingCode is the data needed to store a fresh sign-in code for a phone
// number. ID is only used when the phone is seen for the first time.
type PendingCode struct {
	ID       int64
	Phone    string
	Code     string
	IssuedAt time.Time
}

// NormalizePhone canonicalizes user supplied phone numbers to the local
// 09xxxxxxxxx form. International prefixes +98 and 0098 are folded into the
// leading zero; validation happens separately.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	switch {
	case strings.HasPrefix(phone, "+98"):
		phone = "0" + strings.TrimPrefix(phone, "+98")
	case strings.HasPrefix(phone, "0098"):
		phone = "0" + strings.TrimPrefix(phone, "0098")
	case strings.HasPrefix(phone, "98") && len(phone) == 12:
		phone = "0" + strings.TrimPrefix(phone, "98")
	}

	return phone
}
