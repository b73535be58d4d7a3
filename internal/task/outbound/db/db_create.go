package db

import (
	"context"

	"github.com/amin75t/task-manager/internal/task/entity"
)

const queryCreateTask = `
INSERT INTO tasks (id, identity_id, title, description, priority, estimated_minutes, tags, deadline, with_ai, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (s *DB) CreateTask(ctx context.Context, in entity.Task) (err error) {
	ctx, span := s.startSpan(ctx, "CreateTask")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateTask,
		in.ID,
		in.IdentityID,
		in.Title,
		in.Description,
		in.Priority.String(),
		in.EstimatedMinutes,
		in.Tags,
		in.Deadline,
		in.WithAI,
		in.CreatedAt,
		in.UpdatedAt,
	)

	err = s.mapError(err)
	return err
}
