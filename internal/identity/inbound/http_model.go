package inbound

import (
	"time"
)

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type SendOTPResponse struct {
	IsNewIdentity bool   `json:"is_new_identity"`
	Code          string `json:"code,omitempty"`
}

func (SendOTPResponse) Message() string {
	return "Verification code sent."
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type VerifyOTPResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	IdentityID  int64  `json:"identity_id"`
	Phone       string `json:"phone"`
}

func (VerifyOTPResponse) Message() string {
	return "Phone number verified."
}

type ProfileResponse struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
