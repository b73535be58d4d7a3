package usecase

import (
	"context"
	"log/slog"

	"github.com/amin75t/task-manager/internal/pkg/goerror"
)

type TaskDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) TaskDelete(ctx context.Context, in TaskDeleteInput) error {
	ctx, span := s.startSpan(ctx, "TaskDelete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	task, err := s.ownedTask(ctx, in.ID, clm.UserID)
	if err != nil {
		return s.mapTaskError(ctx, in.ID, err)
	}

	if err := s.repoDB.DeleteTask(ctx, task.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete task", "task_id", task.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
