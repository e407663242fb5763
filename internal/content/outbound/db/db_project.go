package db

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const listProjects = `
SELECT id, title, description, tech, link, image_url, file_urls, featured, sort_order, created_at, updated_at
FROM projects
ORDER BY sort_order ASC, created_at DESC
`

// ListProjects returns all projects in display order.
func (s *DB) ListProjects(ctx context.Context) (_ []entity.Project, err error) {
	ctx, span := s.startSpan(ctx, "ListProjects")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, listProjects)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Project
	for rows.Next() {
		var p entity.Project
		if err = rows.Scan(&p.ID, &p.Title, &p.Description, &p.Tech, &p.Link, &p.ImageURL,
			&p.FileURLs, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

const getProjectByID = `
SELECT id, title, description, tech, link, image_url, file_urls, featured, sort_order, created_at, updated_at
FROM projects
WHERE id = $1
`

// GetProjectByID returns the project with the given id.
func (s *DB) GetProjectByID(ctx context.Context, id int64) (_ *entity.Project, err error) {
	ctx, span := s.startSpan(ctx, "GetProjectByID")
	defer func() { s.endSpan(span, err) }()

	var p entity.Project
	err = s.mapError(s.conn.QueryRow(ctx, getProjectByID, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Tech, &p.Link, &p.ImageURL,
			&p.FileURLs, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt))
	if err != nil {
		return nil, err
	}

	return &p, nil
}

const createProject = `
INSERT INTO projects (id, title, description, tech, link, image_url, file_urls, featured, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
`

// CreateProject persists a new project.
func (s *DB) CreateProject(ctx context.Context, p entity.Project) (err error) {
	ctx, span := s.startSpan(ctx, "CreateProject")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createProject, p.ID, p.Title, p.Description, p.Tech,
		p.Link, p.ImageURL, p.FileURLs, p.Featured, p.SortOrder, p.CreatedAt)
	return s.mapError(err)
}

const updateProject = `
UPDATE projects
SET title = $2, description = $3, tech = $4, link = $5, featured = $6,
    sort_order = $7, updated_at = NOW()
WHERE id = $1
`

// UpdateProject replaces the project fields except the media URLs.
func (s *DB) UpdateProject(ctx context.Context, p entity.Project) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProject")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateProject, p.ID, p.Title, p.Description, p.Tech,
		p.Link, p.Featured, p.SortOrder)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const updateProjectFiles = `
UPDATE projects
SET image_url = $2, file_urls = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateProjectFiles replaces the project media URLs.
func (s *DB) UpdateProjectFiles(ctx context.Context, id int64, imageURL string, fileURLs []string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProjectFiles")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateProjectFiles, id, imageURL, fileURLs)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const deleteProject = `
DELETE FROM projects
WHERE id = $1
`

// DeleteProject removes the project.
func (s *DB) DeleteProject(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteProject")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteProject, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
