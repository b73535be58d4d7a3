package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/amin75t/task-manager/internal/identity/entity"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
)

type VerifyCodeInput struct {
	Phone string `validate:"required,phone"`
	Code  string `validate:"required,len=6,numeric"`
}

type VerifyCodeOutput struct {
	AccessToken string
	TokenType   string
	IdentityID  int64
	Phone       string
}

// VerifyCode checks the submitted sign-in code and returns a session token.
// Checks run in a fixed order: unknown phone, no pending code, expiry, then
// the code comparison. A failed attempt never consumes the stored code; a
// successful one consumes it atomically so it cannot be replayed.
func (s *Usecase) VerifyCode(ctx context.Context, in VerifyCodeInput) (*VerifyCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyCode")
	defer span.End()

	in.Phone = entity.NormalizePhone(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	identity, err := s.repoDB.GetIdentityByPhone(ctx, in.Phone)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "verify attempt for unknown phone", "phone", in.Phone)
		return nil, goerror.NewBusiness("Identity not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get identity by phone", "phone", in.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.classifyPendingCode(ctx, identity, in.Code); err != nil {
		return nil, err
	}

	consumed, err := s.repoDB.ConsumeCode(ctx, identity.ID, in.Code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo consume code", "identity_id", identity.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Lost the race against a concurrent request or verification. Re-read and
	// classify again so the caller gets the accurate reason.
	if !consumed {
		current, err := s.repoDB.GetIdentityByPhone(ctx, in.Phone)
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Identity not found", goerror.CodeNotFound)
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo re-read identity", "phone", in.Phone, "error", err)
			return nil, goerror.NewServer(err)
		}

		if err := s.classifyPendingCode(ctx, current, in.Code); err != nil {
			return nil, err
		}

		return nil, goerror.NewBusiness("Verification code is incorrect", goerror.CodeInvalidInput)
	}

	token, err := s.jwt.Generate(identity.ID, identity.Phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "identity_id", identity.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyCodeOutput{
		AccessToken: token,
		TokenType:   "bearer",
		IdentityID:  identity.ID,
		Phone:       identity.Phone,
	}, nil
}

// classifyPendingCode rejects verification attempts that cannot succeed,
// checking expiry before the code comparison so an expired-but-correct code
// still reads as expired.
func (s *Usecase) classifyPendingCode(ctx context.Context, identity *entity.Identity, code string) error {
	if !identity.HasPendingCode() {
		slog.WarnContext(ctx, "verify attempt without pending code", "identity_id", identity.ID)
		return goerror.NewBusiness("No verification code was requested", goerror.CodeInvalidInput)
	}

	if identity.CodeExpired(s.clock.Now(), s.codeTTL()) {
		slog.WarnContext(ctx, "verify attempt with expired code", "identity_id", identity.ID)
		return goerror.NewBusiness("Verification code has expired", goerror.CodeInvalidInput)
	}

	if subtle.ConstantTimeCompare([]byte(identity.PendingCodeValue()), []byte(code)) != 1 {
		slog.WarnContext(ctx, "verify attempt with wrong code", "identity_id", identity.ID)
		return goerror.NewBusiness("Verification code is incorrect", goerror.CodeInvalidInput)
	}

	return nil
}
