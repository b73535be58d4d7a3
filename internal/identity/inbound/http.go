package inbound

import (
	"context"

	"github.com/amin75t/task-manager/internal/identity/usecase"
	"github.com/amin75t/task-manager/internal/pkg/router"
)

type uc interface {
	RequestCode(ctx context.Context, in usecase.RequestCodeInput) (*usecase.RequestCodeOutput, error)
	VerifyCode(ctx context.Context, in usecase.VerifyCodeInput) (*usecase.VerifyCodeOutput, error)
	Profile(ctx context.Context, in usecase.ProfileInput) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Phone sign-in
	r.POST("/api/v1/auth/send-otp", end.SendOTP)
	r.POST("/api/v1/auth/verify-otp", end.VerifyOTP)

	// Profile (need authenticated)
	r.GET("/api/v1/auth/me", end.Profile)
}
