package db

import (
	"context"

	"github.com/amin75t/task-manager/internal/identity/entity"
)

// A new phone gets a fresh row; an existing one gets its code superseded and
// its verification flag reset in the same statement. xmax = 0 distinguishes
// insert from update on the returned row.
const queryUpsertPendingCode = `
INSERT INTO identities (id, phone, pending_code, code_issued_at, code_verified)
VALUES ($1, $2, $3, $4, FALSE)
ON CONFLICT (phone) DO UPDATE SET
    pending_code   = EXCLUDED.pending_code,
    code_issued_at = EXCLUDED.code_issued_at,
    code_verified  = FALSE,
    updated_at     = NOW()
RETURNING id, (xmax = 0) AS inserted`

func (s *DB) UpsertPendingCode(ctx context.Context, in entity.PendingCode) (identityID int64, created bool, err error) {
	ctx, span := s.startSpan(ctx, "UpsertPendingCode")
	defer func() { s.endSpan(span, err) }()

	err = s.conn.QueryRow(ctx, queryUpsertPendingCode, in.ID, in.Phone, in.Code, in.IssuedAt).
		Scan(&identityID, &created)
	if err != nil {
		return 0, false, s.mapError(err)
	}

	return identityID, created, nil
}
