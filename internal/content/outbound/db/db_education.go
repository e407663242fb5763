package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const listEducations = `
SELECT id, institution, degree, field, start_year, end_year, grade, description, sort_order, created_at, updated_at
FROM educations
ORDER BY sort_order ASC, created_at DESC
`

// ListEducations returns all education entries in display order.
func (s *DB) ListEducations(ctx context.Context) (_ []entity.Education, err error) {
	ctx, span := s.startSpan(ctx, "ListEducations")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, listEducations)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Education
	for rows.Next() {
		var e entity.Education
		if err = rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartYear,
			&e.EndYear, &e.Grade, &e.Description, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

const createEducation = `
INSERT INTO educations (id, institution, degree, field, start_year, end_year, grade, description, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
`

// CreateEducation persists a new education entry.
func (s *DB) CreateEducation(ctx context.Context, e entity.Education) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEducation")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createEducation, e.ID, e.Institution, e.Degree, e.Field,
		e.StartYear, e.EndYear, e.Grade, e.Description, e.SortOrder, e.CreatedAt)
	return s.mapError(err)
}

const updateEducation = `
UPDATE educations
SET institution = $2, degree = $3, field = $4, start_year = $5, end_year = $6,
    grade = $7, description = $8, sort_order = $9, updated_at = NOW()
WHERE id = $1
`

// UpdateEducation replaces the entry fields.
func (s *DB) UpdateEducation(ctx context.Context, e entity.Education) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateEducation")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateEducation, e.ID, e.Institution, e.Degree, e.Field,
		e.StartYear, e.EndYear, e.Grade, e.Description, e.SortOrder)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const deleteEducation = `
DELETE FROM educations
WHERE id = $1
`

// DeleteEducation removes the entry.
func (s *DB) DeleteEducation(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteEducation")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteEducation, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
