package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

// ExperienceList returns all work history entries in display order.
func (s *Usecase) ExperienceList(ctx context.Context) ([]entity.Experience, error) {
	ctx, span := s.startSpan(ctx, "ExperienceList")
	defer span.End()

	out, err := s.repoDB.ListExperiences(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list experiences", "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

type ExperienceCreateInput struct {
	Role        string `validate:"required,max=150"`
	Company     string `validate:"required,max=150"`
	StartDate   string `validate:"max=50"`
	EndDate     string `validate:"max=50"`
	Duration    string `validate:"max=50"`
	Description string `validate:"max=2000"`
	SortOrder   int32
}

func (s *Usecase) ExperienceCreate(ctx context.Context, in ExperienceCreateInput) (*entity.Experience, error) {
	ctx, span := s.startSpan(ctx, "ExperienceCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	e := entity.Experience{
		ID:          s.uid.Generate(),
		Role:        in.Role,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Duration:    in.Duration,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		CreatedAt:   s.clock.Now(),
	}
	e.UpdatedAt = e.CreatedAt

	if err := s.repoDB.CreateExperience(ctx, e); err != nil {
		slog.ErrorContext(ctx, "failed to repo create experience", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &e, nil
}

type ExperienceUpdateInput struct {
	ID          int64  `validate:"required"`
	Role        string `validate:"required,max=150"`
	Company     string `validate:"required,max=150"`
	StartDate   string `validate:"max=50"`
	EndDate     string `validate:"max=50"`
	Duration    string `validate:"max=50"`
	Description string `validate:"max=2000"`
	SortOrder   int32
}

func (s *Usecase) ExperienceUpdate(ctx context.Context, in ExperienceUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ExperienceUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.UpdateExperience(ctx, entity.Experience{
		ID:          in.ID,
		Role:        in.Role,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Duration:    in.Duration,
		Description: in.Description,
		SortOrder:   in.SortOrder,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Experience not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update experience", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) ExperienceDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "ExperienceDelete")
	defer span.End()

	err := s.repoDB.DeleteExperience(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Experience not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete experience", "id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
