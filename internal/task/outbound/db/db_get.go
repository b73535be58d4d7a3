package db

import (
	"context"

	"github.com/amin75t/task-manager/internal/task/entity"
)

const queryGetTaskByID = `
SELECT id, identity_id, title, description, priority, estimated_minutes, tags, deadline, with_ai, created_at, updated_at
FROM tasks
WHERE id = $1`

func (s *DB) GetTaskByID(ctx context.Context, id int64) (_ *entity.Task, err error) {
	ctx, span := s.startSpan(ctx, "GetTaskByID")
	defer func() { s.endSpan(span, err) }()

	var out entity.Task
	err = s.conn.QueryRow(ctx, queryGetTaskByID, id).Scan(
		&out.ID,
		&out.IdentityID,
		&out.Title,
		&out.Description,
		&out.Priority,
		&out.EstimatedMinutes,
		&out.Tags,
		&out.Deadline,
		&out.WithAI,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

const queryGetTaskList = `
SELECT id, identity_id, title, description, priority, estimated_minutes, tags, deadline, with_ai, created_at, updated_at
FROM tasks
WHERE identity_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const queryCountTasks = `
SELECT COUNT(*) FROM tasks WHERE identity_id = $1`

func (s *DB) GetTaskList(ctx context.Context, identityID int64, filter entity.TaskListFilter) (_ []entity.Task, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetTaskList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetTaskList, identityID, filter.Size, filter.Offset())
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err = rows.Scan(
			&t.ID,
			&t.IdentityID,
			&t.Title,
			&t.Description,
			&t.Priority,
			&t.EstimatedMinutes,
			&t.Tags,
			&t.Deadline,
			&t.WithAI,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, 0, s.mapError(err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountTasks, identityID).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	return tasks, total, nil
}
