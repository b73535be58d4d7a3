package usecase

import (
	"context"
	"time"

	"github.com/amin75t/task-manager/internal/pkg/goerror"
)

type TaskSubmitProcessedInput struct {
	Title            string `validate:"required,min=1,max=200"`
	Description      string `validate:"required,min=1,max=2000"`
	Priority         string
	EstimatedMinutes int32 `validate:"gte=0"`
	Tags             []string
	Deadline         *time.Time
	IdempotencyKey   string
}

// TaskSubmitProcessed stores a task produced by the AI processing flow. It is
// a create with the AI flag forced on and a mandatory description, since the
// cleaned text is the whole point of the flow.
func (s *Usecase) TaskSubmitProcessed(ctx context.Context, in TaskSubmitProcessedInput) (*TaskCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "TaskSubmitProcessed")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	return s.TaskCreate(ctx, TaskCreateInput{
		Title:            in.Title,
		Description:      in.Description,
		Priority:         in.Priority,
		EstimatedMinutes: in.EstimatedMinutes,
		Tags:             in.Tags,
		Deadline:         in.Deadline,
		WithAI:           true,
		IdempotencyKey:   in.IdempotencyKey,
	})
}
