package inbound

import (
	"github.com/amin75t/task-manager/internal/identity/usecase"
	"github.com/amin75t/task-manager/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the phone sign-in workflow.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP issues a sign-in code for a phone number and sends it by SMS.
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RequestCode(r.Context(), usecase.RequestCodeInput{Phone: req.Phone})
	if err != nil {
		return nil, err
	}

	return SendOTPResponse{
		IsNewIdentity: resp.IsNewIdentity,
		Code:          resp.Code,
	}, nil
}

// VerifyOTP checks a sign-in code and returns a session token.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyCode(r.Context(), usecase.VerifyCodeInput{
		Phone: req.Phone,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		IdentityID:  resp.IdentityID,
		Phone:       resp.Phone,
	}, nil
}

// Profile returns the authenticated identity.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{})
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Phone:     resp.Phone,
		Verified:  resp.Verified,
		CreatedAt: resp.CreatedAt,
	}, nil
}
