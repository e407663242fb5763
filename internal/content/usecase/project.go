package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

// ProjectList returns all projects in display order.
func (s *Usecase) ProjectList(ctx context.Context) ([]entity.Project, error) {
	ctx, span := s.startSpan(ctx, "ProjectList")
	defer span.End()

	out, err := s.repoDB.ListProjects(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list projects", "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

type ProjectCreateInput struct {
	Title       string   `validate:"required,max=150"`
	Description string   `validate:"max=2000"`
	Tech        []string `validate:"max=30,dive,max=50"`
	Link        string   `validate:"omitempty,url"`
	Featured    bool
	SortOrder   int32
}

func (s *Usecase) ProjectCreate(ctx context.Context, in ProjectCreateInput) (*entity.Project, error) {
	ctx, span := s.startSpan(ctx, "ProjectCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	p := entity.Project{
		ID:          s.uid.Generate(),
		Title:       in.Title,
		Description: in.Description,
		Tech:        in.Tech,
		Link:        in.Link,
		FileURLs:    []string{},
		Featured:    in.Featured,
		SortOrder:   in.SortOrder,
		CreatedAt:   s.clock.Now(),
	}
	p.UpdatedAt = p.CreatedAt

	if err := s.repoDB.CreateProject(ctx, p); err != nil {
		slog.ErrorContext(ctx, "failed to repo create project", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &p, nil
}

type ProjectUpdateInput struct {
	ID          int64    `validate:"required"`
	Title       string   `validate:"required,max=150"`
	Description string   `validate:"max=2000"`
	Tech        []string `validate:"max=30,dive,max=50"`
	Link        string   `validate:"omitempty,url"`
	Featured    bool
	SortOrder   int32
}

// ProjectUpdate replaces the descriptive fields. Uploaded media is
// managed through ProjectUploadFiles and survives the update.
func (s *Usecase) ProjectUpdate(ctx context.Context, in ProjectUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProjectUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.UpdateProject(ctx, entity.Project{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Tech:        in.Tech,
		Link:        in.Link,
		Featured:    in.Featured,
		SortOrder:   in.SortOrder,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Project not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update project", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

// ProjectDelete removes the project and best-effort removes its
// uploaded media from object storage.
func (s *Usecase) ProjectDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "ProjectDelete")
	defer span.End()

	project, err := s.repoDB.GetProjectByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Project not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get project", "id", id, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Project not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete project", "id", id, "error", err)
		return goerror.NewServer(err)
	}

	s.removeObjects(ctx, project.FileURLs)

	return nil
}
