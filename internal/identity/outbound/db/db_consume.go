package db

import (
	"context"
)

// The code match is part of the WHERE clause so only one concurrent
// verification can win; losers see zero rows affected.
const queryConsumeCode = `
UPDATE identities
SET pending_code   = NULL,
    code_issued_at = NULL,
    code_verified  = TRUE,
    updated_at     = NOW()
WHERE id = $1 AND pending_code = $2`

func (s *DB) ConsumeCode(ctx context.Context, identityID int64, code string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ConsumeCode")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryConsumeCode, identityID, code)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() > 0, nil
}
