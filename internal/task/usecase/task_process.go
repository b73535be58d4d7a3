package usecase

import (
	"context"
	"log/slog"

	"github.com/amin75t/task-manager/internal/pkg/goerror"
)

type TaskProcessInput struct {
	Text string `validate:"required,min=1,max=2000"`
}

type TaskProcessOutput struct {
	Title            string
	PreprocessedText string
	OriginalText     string
}

// TaskProcess sends raw Persian task text to the language model, which fixes
// typos and produces a short title plus a cleaned description. The result is
// not persisted; clients submit it separately once the user approves it.
func (s *Usecase) TaskProcess(ctx context.Context, in TaskProcessInput) (*TaskProcessOutput, error) {
	ctx, span := s.startSpan(ctx, "TaskProcess")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	processed, err := s.repoAI.ProcessTask(ctx, in.Text)
	if err != nil {
		slog.ErrorContext(ctx, "failed to process task text", "error", err)
		return nil, goerror.NewBusiness("Task processing is unavailable", goerror.CodeUnavailable)
	}

	return &TaskProcessOutput{
		Title:            processed.Title,
		PreprocessedText: processed.PreprocessedText,
		OriginalText:     in.Text,
	}, nil
}
