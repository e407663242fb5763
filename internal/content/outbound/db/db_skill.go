package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const listSkills = `
SELECT id, name, level, percent, category, sort_order, created_at, updated_at
FROM skills
ORDER BY sort_order ASC, created_at DESC
`

// ListSkills returns all skills in display order.
func (s *DB) ListSkills(ctx context.Context) (_ []entity.Skill, err error) {
	ctx, span := s.startSpan(ctx, "ListSkills")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, listSkills)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Skill
	for rows.Next() {
		var sk entity.Skill
		if err = rows.Scan(&sk.ID, &sk.Name, &sk.Level, &sk.Percent, &sk.Category,
			&sk.SortOrder, &sk.CreatedAt, &sk.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, sk)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

const createSkill = `
INSERT INTO skills (id, name, level, percent, category, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
`

// CreateSkill persists a new skill.
func (s *DB) CreateSkill(ctx context.Context, sk entity.Skill) (err error) {
	ctx, span := s.startSpan(ctx, "CreateSkill")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createSkill, sk.ID, sk.Name, sk.Level, sk.Percent,
		sk.Category, sk.SortOrder, sk.CreatedAt)
	return s.mapError(err)
}

const updateSkill = `
UPDATE skills
SET name = $2, level = $3, percent = $4, category = $5, sort_order = $6, updated_at = NOW()
WHERE id = $1
`

// UpdateSkill replaces the skill fields.
func (s *DB) UpdateSkill(ctx context.Context, sk entity.Skill) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateSkill")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateSkill, sk.ID, sk.Name, sk.Level, sk.Percent,
		sk.Category, sk.SortOrder)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const deleteSkill = `
DELETE FROM skills
WHERE id = $1
`

// DeleteSkill removes the skill.
func (s *DB) DeleteSkill(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteSkill")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteSkill, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
