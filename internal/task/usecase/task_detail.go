package usecase

import (
	"context"

	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/task/entity"
)

type TaskDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type TaskDetailOutput struct {
	Task entity.Task
}

func (s *Usecase) TaskDetail(ctx context.Context, in TaskDetailInput) (*TaskDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "TaskDetail")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	task, err := s.ownedTask(ctx, in.ID, clm.UserID)
	if err != nil {
		return nil, s.mapTaskError(ctx, in.ID, err)
	}

	return &TaskDetailOutput{Task: *task}, nil
}
