package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const listExperiences = `
SELECT id, role, company, start_date, end_date, duration, description, sort_order, created_at, updated_at
FROM experiences
ORDER BY sort_order ASC, start_date DESC, created_at DESC
`

// ListExperiences returns all work history entries in display order.
func (s *DB) ListExperiences(ctx context.Context) (_ []entity.Experience, err error) {
	ctx, span := s.startSpan(ctx, "ListExperiences")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, listExperiences)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Experience
	for rows.Next() {
		var e entity.Experience
		if err = rows.Scan(&e.ID, &e.Role, &e.Company, &e.StartDate, &e.EndDate,
			&e.Duration, &e.Description, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

const createExperience = `
INSERT INTO experiences (id, role, company, start_date, end_date, duration, description, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
`

// CreateExperience persists a new work history entry.
func (s *DB) CreateExperience(ctx context.Context, e entity.Experience) (err error) {
	ctx, span := s.startSpan(ctx, "CreateExperience")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createExperience, e.ID, e.Role, e.Company, e.StartDate,
		e.EndDate, e.Duration, e.Description, e.SortOrder, e.CreatedAt)
	return s.mapError(err)
}

const updateExperience = `
UPDATE experiences
SET role = $2, company = $3, start_date = $4, end_date = $5, duration = $6,
    description = $7, sort_order = $8, updated_at = NOW()
WHERE id = $1
`

// UpdateExperience replaces the entry fields.
func (s *DB) UpdateExperience(ctx context.Context, e entity.Experience) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateExperience")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateExperience, e.ID, e.Role, e.Company, e.StartDate,
		e.EndDate, e.Duration, e.Description, e.SortOrder)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const deleteExperience = `
DELETE FROM experiences
WHERE id = $1
`

// DeleteExperience removes the entry.
func (s *DB) DeleteExperience(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteExperience")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteExperience, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
