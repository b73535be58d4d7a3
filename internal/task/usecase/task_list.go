package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/task/entity"
)

const (
	defaultListSize int32 = 20
	maxListSize     int32 = 100
)

type TaskListInput struct {
	Size int32
	Page int32
}

type TaskListOutput struct {
	Tasks []entity.Task
	Total int64
	Size  int32
	Page  int32
}

// TaskList returns the identity's tasks, newest first.
func (s *Usecase) TaskList(ctx context.Context, in TaskListInput) (*TaskListOutput, error) {
	ctx, span := s.startSpan(ctx, "TaskList")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	filter := entity.TaskListFilter{
		Size: lo.Clamp(in.Size, 1, s.listSizeCap()),
		Page: in.Page,
	}
	if in.Size < 1 {
		filter.Size = defaultListSize
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	tasks, total, err := s.repoDB.GetTaskList(ctx, clm.UserID, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get task list", "identity_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TaskListOutput{
		Tasks: tasks,
		Total: total,
		Size:  filter.Size,
		Page:  filter.Page,
	}, nil
}

func (s *Usecase) listSizeCap() int32 {
	if v := int32(s.cfg.GetInt("modules.task.list_max_size")); v > 0 {
		return v
	}
	return maxListSize
}
