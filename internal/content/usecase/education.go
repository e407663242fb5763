package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

// EducationList returns all education entries in display order.
func (s *Usecase) EducationList(ctx context.Context) ([]entity.Education, error) {
	ctx, span := s.startSpan(ctx, "EducationList")
	defer span.End()

	out, err := s.repoDB.ListEducations(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list educations", "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

type EducationCreateInput struct {
	Institution string `validate:"required,max=150"`
	Degree      string `validate:"max=150"`
	Field       string `validate:"max=150"`
	StartYear   string `validate:"max=10"`
	EndYear     string `validate:"max=10"`
	Grade       string `validate:"max=50"`
	Description string `validate:"max=2000"`
	SortOrder   int32
}

func (s *Usecase) EducationCreate(ctx context.Context, in EducationCreateInput) (*entity.Education, error) {
	ctx, span := s.startSpan(ctx, "EducationCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	e := entity.Education{
		ID:          s.uid.Generate(),
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartYear:   in.StartYear,
		EndYear:     in.EndYear,
		Grade:       in.Grade,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		CreatedAt:   s.clock.Now(),
	}
	e.UpdatedAt = e.CreatedAt

	if err := s.repoDB.CreateEducation(ctx, e); err != nil {
		slog.ErrorContext(ctx, "failed to repo create education", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &e, nil
}

type EducationUpdateInput struct {
	ID          int64  `validate:"required"`
	Institution string `validate:"required,max=150"`
	Degree      string `validate:"max=150"`
	Field       string `validate:"max=150"`
	StartYear   string `validate:"max=10"`
	EndYear     string `validate:"max=10"`
	Grade       string `validate:"max=50"`
	Description string `validate:"max=2000"`
	SortOrder   int32
}

func (s *Usecase) EducationUpdate(ctx context.Context, in EducationUpdateInput) error {
	ctx, span := s.startSpan(ctx, "EducationUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.UpdateEducation(ctx, entity.Education{
		ID:          in.ID,
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartYear:   in.StartYear,
		EndYear:     in.EndYear,
		Grade:       in.Grade,
		Description: in.Description,
		SortOrder:   in.SortOrder,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Education not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update education", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) EducationDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "EducationDelete")
	defer span.End()

	err := s.repoDB.DeleteEducation(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Education not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete education", "id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
