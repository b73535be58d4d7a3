package usecase

import (
	"context"
	"log/slog"

	"github.com/amin75t/task-manager/internal/identity/entity"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
)

type RequestCodeInput struct {
	Phone string `validate:"required,phone"`
}

type RequestCodeOutput struct {
	IsNewIdentity bool
	Code          string // only populated when code exposure is enabled
}

// RequestCode issues a fresh sign-in code for the phone number and delivers
// it over SMS. A repeated request supersedes any earlier code. The code is
// stored before delivery is attempted, so a delivery failure leaves a usable
// code behind for clients that retry.
func (s *Usecase) RequestCode(ctx context.Context, in RequestCodeInput) (*RequestCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "RequestCode")
	defer span.End()

	in.Phone = entity.NormalizePhone(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	code, err := s.code.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate sign-in code", "error", err)
		return nil, goerror.NewServer(err)
	}

	identityID, created, err := s.repoDB.UpsertPendingCode(ctx, entity.PendingCode{
		ID:       s.uid.Generate(),
		Phone:    in.Phone,
		Code:     code,
		IssuedAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert pending code", "phone", in.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	if created {
		s.goroutine.Go(ctx, func(ctx context.Context) error {
			if err := s.repoMessaging.PublishIdentityRegistered(ctx, IdentityRegisteredEvent{
				IdentityID: identityID,
				Phone:      in.Phone,
			}); err != nil {
				slog.ErrorContext(ctx, "failed to publish identity registered", "identity_id", identityID, "error", err)
			}
			return nil
		})
	}

	if err := s.codeSender.Send(ctx, in.Phone, code); err != nil {
		slog.ErrorContext(ctx, "failed to deliver sign-in code", "identity_id", identityID, "error", err)
		return nil, goerror.NewBusiness("Failed to send verification code", goerror.CodeUnavailable)
	}

	out := &RequestCodeOutput{IsNewIdentity: created}
	if s.cfg.GetBool("modules.identity.expose_code") {
		out.Code = code
	}

	return out, nil
}
