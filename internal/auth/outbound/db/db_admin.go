package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const getAdminByEmail = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM admins
WHERE LOWER(email) = LOWER($1)
`

// GetAdminByEmail finds the admin with the given email, matched
// case-insensitively.
func (s *DB) GetAdminByEmail(ctx context.Context, email string) (_ *entity.Admin, err error) {
	ctx, span := s.startSpan(ctx, "GetAdminByEmail")
	defer func() { s.endSpan(span, err) }()

	var a entity.Admin
	err = s.mapError(s.conn.QueryRow(ctx, getAdminByEmail, email).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt))
	if err != nil {
		return nil, err
	}

	return &a, nil
}

const getAdminByUsernameOrEmail = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM admins
WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($2)
`

// GetAdminByUsernameOrEmail finds an admin whose username or email
// collides with the given pair, matched case-insensitively.
func (s *DB) GetAdminByUsernameOrEmail(ctx context.Context, username, email string) (_ *entity.Admin, err error) {
	ctx, span := s.startSpan(ctx, "GetAdminByUsernameOrEmail")
	defer func() { s.endSpan(span, err) }()

	var a entity.Admin
	err = s.mapError(s.conn.QueryRow(ctx, getAdminByUsernameOrEmail, username, email).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt))
	if err != nil {
		return nil, err
	}

	return &a, nil
}

const createAdmin = `
INSERT INTO admins (id, username, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
`

// CreateAdmin persists a new admin account.
func (s *DB) CreateAdmin(ctx context.Context, a entity.Admin) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAdmin")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createAdmin, a.ID, a.Username, a.Email, a.PasswordHash, a.CreatedAt)
	return s.mapError(err)
}

const updateAdminPassword = `
UPDATE admins
SET password_hash = $2, updated_at = NOW()
WHERE id = $1
`

// UpdateAdminPassword replaces the stored password hash.
func (s *DB) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAdminPassword")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateAdminPassword, id, passwordHash)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
