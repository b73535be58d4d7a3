package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/pkg/valueobject"
	"github.com/amin75t/task-manager/internal/task/entity"
)

type TaskUpdateInput struct {
	ID               int64 `validate:"required,gt=0"`
	Title            *string
	Description      *string
	Priority         *string
	EstimatedMinutes *int32
	Tags             []string
	Deadline         *time.Time
	WithAI           *bool
}

type TaskUpdateOutput struct {
	Task entity.Task
}

// TaskUpdate applies a partial update to an owned task. Nil fields keep
// their stored values.
func (s *Usecase) TaskUpdate(ctx context.Context, in TaskUpdateInput) (*TaskUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "TaskUpdate")
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

	if in.Title != nil {
		if *in.Title == "" {
			return nil, goerror.NewBusiness("Title cannot be empty", goerror.CodeInvalidInput)
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		priority, ok := entity.ParsePriority(*in.Priority)
		if !ok {
			return nil, goerror.NewBusiness("Priority must be one of Urgent, High, Medium, Low", goerror.CodeInvalidInput)
		}
		task.Priority = priority
	}
	if in.EstimatedMinutes != nil {
		if *in.EstimatedMinutes < 0 {
			return nil, goerror.NewBusiness("Estimated minutes cannot be negative", goerror.CodeInvalidInput)
		}
		task.EstimatedMinutes = *in.EstimatedMinutes
	}
	if in.Tags != nil {
		task.Tags = valueobject.StringList(lo.Uniq(in.Tags))
	}
	if in.Deadline != nil {
		task.Deadline = in.Deadline
	}
	if in.WithAI != nil {
		task.WithAI = *in.WithAI
	}
	task.UpdatedAt = s.clock.Now()

	if err := s.repoDB.UpdateTask(ctx, *task); err != nil {
		slog.ErrorContext(ctx, "failed to repo update task", "task_id", task.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TaskUpdateOutput{Task: *task}, nil
}
