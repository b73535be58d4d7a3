package entity

import (
	"time"

	"github.com/amin75t/task-manager/internal/pkg/valueobject"
)

// Task is a unit of work owned by a single identity. Tasks created through
// the AI flow carry WithAI = true.
type Task struct {
	ID               int64
	IdentityID       int64
	Title            string
	Description      string
	Priority         Priority
	EstimatedMinutes int32
	Tags             valueobject.StringList
	Deadline         *time.Time
	WithAI           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PatchTask carries a partial update. Nil fields are left unchanged.
type PatchTask struct {
	ID               int64
	IdentityID       int64
	Title            *string
	Description      *string
	Priority         *Priority
	EstimatedMinutes *int32
	Tags             *valueobject.StringList
	Deadline         *time.Time
	WithAI           *bool
}

// TaskListFilter narrows and pages the task list query.
type TaskListFilter struct {
	Size int32
	Page int32
}

// Offset converts page/size into a row offset.
func (f TaskListFilter) Offset() int32 {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Size
}
