package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/pkg/idempotency"
	"github.com/amin75t/task-manager/internal/pkg/valueobject"
	"github.com/amin75t/task-manager/internal/task/entity"
)

type TaskCreateInput struct {
	Title            string `validate:"required,min=1,max=200"`
	Description      string `validate:"max=2000"`
	Priority         string
	EstimatedMinutes int32 `validate:"gte=0"`
	Tags             []string
	Deadline         *time.Time
	WithAI           bool
	IdempotencyKey   string
}

type TaskCreateOutput struct {
	Task entity.Task
}

// TaskCreate stores a new task for the authenticated identity. When the
// client supplies an idempotency key, a replay of the same request is
// rejected instead of creating a second task.
func (s *Usecase) TaskCreate(ctx context.Context, in TaskCreateInput) (*TaskCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "TaskCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	priority, ok := entity.ParsePriority(in.Priority)
	if !ok {
		return nil, goerror.NewBusiness("Priority must be one of Urgent, High, Medium, Low", goerror.CodeInvalidInput)
	}

	task := entity.Task{
		ID:               s.uid.Generate(),
		IdentityID:       clm.UserID,
		Title:            in.Title,
		Description:      in.Description,
		Priority:         priority,
		EstimatedMinutes: in.EstimatedMinutes,
		Tags:             valueobject.StringList(lo.Uniq(in.Tags)),
		Deadline:         in.Deadline,
		WithAI:           in.WithAI,
		CreatedAt:        s.clock.Now(),
		UpdatedAt:        s.clock.Now(),
	}

	create := func(ctx context.Context) error {
		return s.repoDB.CreateTask(ctx, task)
	}

	if in.IdempotencyKey != "" {
		key, err := s.idempotencyFingerprint(clm.UserID, in.IdempotencyKey)
		if err != nil {
			slog.ErrorContext(ctx, "failed to fingerprint idempotency key", "error", err)
			return nil, goerror.NewServer(err)
		}
		err = s.idemp.Exec(ctx, key, create)
	} else {
		err = create(ctx)
	}

	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		return nil, goerror.NewBusiness("Task creation already requested", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create task", "identity_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.goroutine.Go(ctx, func(ctx context.Context) error {
		if err := s.repoMessaging.PublishTaskCreated(ctx, TaskCreatedEvent{
			TaskID:     task.ID,
			IdentityID: task.IdentityID,
			Title:      task.Title,
			WithAI:     task.WithAI,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish task created", "task_id", task.ID, "error", err)
		}
		return nil
	})

	return &TaskCreateOutput{Task: task}, nil
}

func (s *Usecase) idempotencyFingerprint(identityID int64, key string) (string, error) {
	sum, err := s.hmac.Hash(fmt.Sprintf("task-create:%d:%s", identityID, key))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
