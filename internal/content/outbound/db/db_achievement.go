package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const listAchievements = `
SELECT id, title, issuer, date, description, link, image_url, sort_order, created_at, updated_at
FROM achievements
ORDER BY sort_order ASC, created_at DESC
`

// ListAchievements returns all achievements in display order.
func (s *DB) ListAchievements(ctx context.Context) (_ []entity.Achievement, err error) {
	ctx, span := s.startSpan(ctx, "ListAchievements")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, listAchievements)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Achievement
	for rows.Next() {
		var a entity.Achievement
		if err = rows.Scan(&a.ID, &a.Title, &a.Issuer, &a.Date, &a.Description,
			&a.Link, &a.ImageURL, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, a)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

const createAchievement = `
INSERT INTO achievements (id, title, issuer, date, description, link, image_url, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
`

// CreateAchievement persists a new achievement.
func (s *DB) CreateAchievement(ctx context.Context, a entity.Achievement) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAchievement")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createAchievement, a.ID, a.Title, a.Issuer, a.Date,
		a.Description, a.Link, a.ImageURL, a.SortOrder, a.CreatedAt)
	return s.mapError(err)
}

const updateAchievement = `
UPDATE achievements
SET title = $2, issuer = $3, date = $4, description = $5, link = $6,
    image_url = $7, sort_order = $8, updated_at = NOW()
WHERE id = $1
`

// UpdateAchievement replaces the achievement fields.
func (s *DB) UpdateAchievement(ctx context.Context, a entity.Achievement) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAchievement")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateAchievement, a.ID, a.Title, a.Issuer, a.Date,
		a.Description, a.Link, a.ImageURL, a.SortOrder)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const deleteAchievement = `
DELETE FROM achievements
WHERE id = $1
`

// DeleteAchievement removes the achievement.
func (s *DB) DeleteAchievement(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteAchievement")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteAchievement, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
