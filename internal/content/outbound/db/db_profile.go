package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const getLatestProfile = `
SELECT id, name, title, summary, email, phone, website, avatar_url, socials, created_at, updated_at
FROM profiles
ORDER BY updated_at DESC
LIMIT 1
`

// GetLatestProfile returns the most recently updated profile.
func (s *DB) GetLatestProfile(ctx context.Context) (_ *entity.Profile, err error) {
	ctx, span := s.startSpan(ctx, "GetLatestProfile")
	defer func() { s.endSpan(span, err) }()

	var p entity.Profile
	err = s.mapError(s.conn.QueryRow(ctx, getLatestProfile).
		Scan(&p.ID, &p.Name, &p.Title, &p.Summary, &p.Email, &p.Phone, &p.Website,
			&p.AvatarURL, &p.Socials, &p.CreatedAt, &p.UpdatedAt))
	if err != nil {
		return nil, err
	}

	return &p, nil
}

const createProfile = `
INSERT INTO profiles (id, name, title, summary, email, phone, website, avatar_url, socials, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
`

// CreateProfile persists a new profile.
func (s *DB) CreateProfile(ctx context.Context, p entity.Profile) (err error) {
	ctx, span := s.startSpan(ctx, "CreateProfile")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createProfile, p.ID, p.Name, p.Title, p.Summary,
		p.Email, p.Phone, p.Website, p.AvatarURL, p.Socials, p.CreatedAt)
	return s.mapError(err)
}

const updateProfile = `
UPDATE profiles
SET name = $2, title = $3, summary = $4, email = $5, phone = $6, website = $7,
    socials = $8, updated_at = NOW()
WHERE id = $1
`

// UpdateProfile replaces the profile fields except the avatar.
func (s *DB) UpdateProfile(ctx context.Context, p entity.Profile) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProfile")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateProfile, p.ID, p.Name, p.Title, p.Summary,
		p.Email, p.Phone, p.Website, p.Socials)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const updateProfileAvatar = `
UPDATE profiles
SET avatar_url = $2, updated_at = NOW()
WHERE id = $1
`

// UpdateProfileAvatar replaces the stored avatar URL.
func (s *DB) UpdateProfileAvatar(ctx context.Context, id int64, avatarURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProfileAvatar")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateProfileAvatar, id, avatarURL)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
