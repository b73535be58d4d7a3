package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/amin75t/task-manager/internal/task/entity"
)

const queryUpdateTask = `
UPDATE tasks
SET title             = $2,
    description       = $3,
    priority          = $4,
    estimated_minutes = $5,
    tags              = $6,
    deadline          = $7,
    with_ai           = $8,
    updated_at        = $9
WHERE id = $1`

func (s *DB) UpdateTask(ctx context.Context, in entity.Task) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateTask")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateTask,
		in.ID,
		in.Title,
		in.Description,
		in.Priority.String(),
		in.EstimatedMinutes,
		in.Tags,
		in.Deadline,
		in.WithAI,
		in.UpdatedAt,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = s.mapError(pgx.ErrNoRows)
		return err
	}

	return nil
}
