package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const queryDeleteTask = `
DELETE FROM tasks WHERE id = $1`

func (s *DB) DeleteTask(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteTask")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteTask, id)
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
