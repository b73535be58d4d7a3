package db

import (
	"context"

	"github.com/amin75t/task-manager/internal/identity/entity"
)

const queryGetIdentityByPhone = `
SELECT id, phone, pending_code, code_issued_at, code_verified, created_at, updated_at
FROM identities
WHERE phone = $1`

func (s *DB) GetIdentityByPhone(ctx context.Context, phone string) (_ *entity.Identity, err error) {
	ctx, span := s.startSpan(ctx, "GetIdentityByPhone")
	defer func() { s.endSpan(span, err) }()

	var out entity.Identity
	err = s.conn.QueryRow(ctx, queryGetIdentityByPhone, phone).Scan(
		&out.ID,
		&out.Phone,
		&out.PendingCode,
		&out.CodeIssuedAt,
		&out.CodeVerified,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

const queryGetIdentityByID = `
SELECT id, phone, pending_code, code_issued_at, code_verified, created_at, updated_at
FROM identities
WHERE id = $1`

func (s *DB) GetIdentityByID(ctx context.Context, id int64) (_ *entity.Identity, err error) {
	ctx, span := s.startSpan(ctx, "GetIdentityByID")
	defer func() { s.endSpan(span, err) }()

	var out entity.Identity
	err = s.conn.QueryRow(ctx, queryGetIdentityByID, id).Scan(
		&out.ID,
		&out.Phone,
		&out.PendingCode,
		&out.CodeIssuedAt,
		&out.CodeVerified,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}
