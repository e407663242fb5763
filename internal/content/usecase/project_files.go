package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

// maxProjectFiles caps a single upload batch.
const maxProjectFiles = 10

type ProjectFile struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type ProjectUploadFilesInput struct {
	ID    int64
	Files []ProjectFile
}

// ProjectUploadFiles stores the uploaded files and appends their URLs
// to the project. The first upload becomes the cover image when the
// project has none yet.
func (s *Usecase) ProjectUploadFiles(ctx context.Context, in ProjectUploadFilesInput) (*entity.Project, error) {
	ctx, span := s.startSpan(ctx, "ProjectUploadFiles")
	defer span.End()

	if len(in.Files) == 0 {
		return nil, goerror.NewInvalidInput(nil, "files", "at least one file is required")
	}
	if len(in.Files) > maxProjectFiles {
		return nil, goerror.NewInvalidInput(nil, "files", "too many files")
	}

	project, err := s.repoDB.GetProjectByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Project not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get project", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	uploaded := make([]string, 0, len(in.Files))
	for _, f := range in.Files {
		contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
		ext, ok := projectFileContentTypeExt[contentType]
		if !ok {
			return nil, goerror.NewInvalidInput(nil, "files", "unsupported file content type")
		}

		url, err := s.uploadObject(ctx, "projects", contentType, ext, f.Data)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, url)
	}

	project.FileURLs = append(project.FileURLs, uploaded...)
	if project.ImageURL == "" {
		project.ImageURL = uploaded[0]
	}

	if err := s.repoDB.UpdateProjectFiles(ctx, project.ID, project.ImageURL, project.FileURLs); err != nil {
		slog.ErrorContext(ctx, "failed to repo update project files", "id", project.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return project, nil
}
