package inbound

import (
	"net/http"
	"time"

	"github.com/amin75t/task-manager/internal/task/entity"
)

type TaskRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Priority         string     `json:"priority"`
	EstimatedMinutes int32      `json:"estimated_minutes"`
	Tags             []string   `json:"tags"`
	Deadline         *time.Time `json:"deadline"`
	WithAI           bool       `json:"with_ai"`
}

type TaskSubmitProcessedRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Priority         string     `json:"priority"`
	EstimatedMinutes int32      `json:"estimated_minutes"`
	Tags             []string   `json:"tags"`
	Deadline         *time.Time `json:"deadline"`
}

type TaskUpdateRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Priority         *string    `json:"priority"`
	EstimatedMinutes *int32     `json:"estimated_minutes"`
	Tags             []string   `json:"tags"`
	Deadline         *time.Time `json:"deadline"`
	WithAI           *bool      `json:"with_ai"`
}

type TaskData struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Priority         string     `json:"priority"`
	EstimatedMinutes int32      `json:"estimated_minutes"`
	Tags             []string   `json:"tags"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	WithAI           bool       `json:"with_ai"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type TaskCreatedResponse struct {
	TaskData
}

func (TaskCreatedResponse) Message() string {
	return "Task created."
}

func (TaskCreatedResponse) StatusCode() int {
	return http.StatusCreated
}

type TaskDeletedResponse struct{}

func (TaskDeletedResponse) Message() string {
	return "Task deleted."
}

type TaskListResponse struct {
	Tasks []TaskData `json:"tasks"`
	Total int64      `json:"-"`
	Size  int32      `json:"-"`
	Page  int32      `json:"-"`
}

func (r TaskListResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.Total,
		"size":  r.Size,
		"page":  r.Page,
	}
}

type TaskProcessRequest struct {
	TaskText string `json:"task_text"`
}

type TaskProcessResponse struct {
	Title            string `json:"title"`
	PreprocessedText string `json:"preprocessed_text"`
	OriginalText     string `json:"original_text"`
}

func toTaskData(t entity.Task) TaskData {
	return TaskData{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Priority:         t.Priority.String(),
		EstimatedMinutes: t.EstimatedMinutes,
		Tags:             []string(t.Tags),
		Deadline:         t.Deadline,
		WithAI:           t.WithAI,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
