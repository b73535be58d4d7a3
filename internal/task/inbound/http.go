package inbound

import (
	"context"

	"github.com/amin75t/task-manager/internal/pkg/router"
	"github.com/amin75t/task-manager/internal/task/usecase"
)

type uc interface {
	TaskCreate(ctx context.Context, in usecase.TaskCreateInput) (*usecase.TaskCreateOutput, error)
	TaskSubmitProcessed(ctx context.Context, in usecase.TaskSubmitProcessedInput) (*usecase.TaskCreateOutput, error)
	TaskList(ctx context.Context, in usecase.TaskListInput) (*usecase.TaskListOutput, error)
	TaskDetail(ctx context.Context, in usecase.TaskDetailInput) (*usecase.TaskDetailOutput, error)
	TaskUpdate(ctx context.Context, in usecase.TaskUpdateInput) (*usecase.TaskUpdateOutput, error)
	TaskDelete(ctx context.Context, in usecase.TaskDeleteInput) error
	TaskProcess(ctx context.Context, in usecase.TaskProcessInput) (*usecase.TaskProcessOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Task management (need authenticated)
	r.GET("/api/v1/tasks", end.TaskList)
	r.POST("/api/v1/tasks", end.TaskCreate)
	r.GET("/api/v1/tasks/:id", end.TaskDetail)
	r.PUT("/api/v1/tasks/:id", end.TaskUpdate)
	r.DELETE("/api/v1/tasks/:id", end.TaskDelete)

	// AI processing (need authenticated)
	r.POST("/api/v1/tasks/process", end.TaskProcess)
	r.POST("/api/v1/tasks/submit-processed", end.TaskSubmitProcessed)
}
