package inbound

import (
	"github.com/samber/lo"
	"github.com/amin75t/task-manager/internal/pkg/router"
	"github.com/amin75t/task-manager/internal/task/entity"
	"github.com/amin75t/task-manager/internal/task/usecase"
)

// HTTPEndpoint exposes HTTP handlers for task management and AI processing.
type HTTPEndpoint struct {
	uc uc
}

// TaskCreate stores a new task for the authenticated identity.
func (h *HTTPEndpoint) TaskCreate(r *router.Request) (any, error) {
	var req TaskRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TaskCreate(r.Context(), usecase.TaskCreateInput{
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		Tags:             req.Tags,
		Deadline:         req.Deadline,
		WithAI:           req.WithAI,
		IdempotencyKey:   r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return TaskCreatedResponse{TaskData: toTaskData(resp.Task)}, nil
}

// TaskSubmitProcessed saves an AI-processed task.
func (h *HTTPEndpoint) TaskSubmitProcessed(r *router.Request) (any, error) {
	var req TaskSubmitProcessedRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TaskSubmitProcessed(r.Context(), usecase.TaskSubmitProcessedInput{
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		Tags:             req.Tags,
		Deadline:         req.Deadline,
		IdempotencyKey:   r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return TaskCreatedResponse{TaskData: toTaskData(resp.Task)}, nil
}

// TaskList returns the identity's tasks, newest first.
func (h *HTTPEndpoint) TaskList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.TaskList(r.Context(), usecase.TaskListInput{Size: size, Page: page})
	if err != nil {
		return nil, err
	}

	return TaskListResponse{
		Tasks: lo.Map(resp.Tasks, func(t entity.Task, _ int) TaskData { return toTaskData(t) }),
		Total: resp.Total,
		Size:  resp.Size,
		Page:  resp.Page,
	}, nil
}

// TaskDetail returns a single owned task.
func (h *HTTPEndpoint) TaskDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.TaskDetail(r.Context(), usecase.TaskDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return toTaskData(resp.Task), nil
}

// TaskUpdate partially updates an owned task.
func (h *HTTPEndpoint) TaskUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req TaskUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TaskUpdate(r.Context(), usecase.TaskUpdateInput{
		ID:               id,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		Tags:             req.Tags,
		Deadline:         req.Deadline,
		WithAI:           req.WithAI,
	})
	if err != nil {
		return nil, err
	}

	return toTaskData(resp.Task), nil
}

// TaskDelete removes an owned task.
func (h *HTTPEndpoint) TaskDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.TaskDelete(r.Context(), usecase.TaskDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return TaskDeletedResponse{}, nil
}

// TaskProcess cleans up raw Persian task text with the language model.
func (h *HTTPEndpoint) TaskProcess(r *router.Request) (any, error) {
	var req TaskProcessRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TaskProcess(r.Context(), usecase.TaskProcessInput{Text: req.TaskText})
	if err != nil {
		return nil, err
	}

	return TaskProcessResponse{
		Title:            resp.Title,
		PreprocessedText: resp.PreprocessedText,
		OriginalText:     resp.OriginalText,
	}, nil
}
