package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
)

type ProfileInput struct{}

type ProfileOutput struct {
	ID        int64
	Phone     string
	Verified  bool
	CreatedAt time.Time
}

func (s *Usecase) Profile(ctx context.Context, in ProfileInput) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	identity, err := s.repoDB.GetIdentityByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "identity for valid token not found", "identity_id", clm.UserID)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get identity by id", "identity_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		ID:        identity.ID,
		Phone:     identity.Phone,
		Verified:  identity.CodeVerified,
		CreatedAt: identity.CreatedAt,
	}, nil
}
