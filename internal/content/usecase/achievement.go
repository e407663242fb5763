package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

// AchievementList returns all achievements in display order.
func (s *Usecase) AchievementList(ctx context.Context) ([]entity.Achievement, error) {
	ctx, span := s.startSpan(ctx, "AchievementList")
	defer span.End()

	out, err := s.repoDB.ListAchievements(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list achievements", "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

type AchievementCreateInput struct {
	Title       string `validate:"required,max=150"`
	Issuer      string `validate:"max=150"`
	Date        string `validate:"max=50"`
	Description string `validate:"max=2000"`
	Link        string `validate:"omitempty,url"`
	ImageURL    string `validate:"omitempty,url"`
	SortOrder   int32
}

func (s *Usecase) AchievementCreate(ctx context.Context, in AchievementCreateInput) (*entity.Achievement, error) {
	ctx, span := s.startSpan(ctx, "AchievementCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	a := entity.Achievement{
		ID:          s.uid.Generate(),
		Title:       in.Title,
		Issuer:      in.Issuer,
		Date:        in.Date,
		Description: in.Description,
		Link:        in.Link,
		ImageURL:    in.ImageURL,
		SortOrder:   in.SortOrder,
		CreatedAt:   s.clock.Now(),
	}
	a.UpdatedAt = a.CreatedAt

	if err := s.repoDB.CreateAchievement(ctx, a); err != nil {
		slog.ErrorContext(ctx, "failed to repo create achievement", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &a, nil
}

type AchievementUpdateInput struct {
	ID          int64  `validate:"required"`
	Title       string `validate:"required,max=150"`
	Issuer      string `validate:"max=150"`
	Date        string `validate:"max=50"`
	Description string `validate:"max=2000"`
	Link        string `validate:"omitempty,url"`
	ImageURL    string `validate:"omitempty,url"`
	SortOrder   int32
}

func (s *Usecase) AchievementUpdate(ctx context.Context, in AchievementUpdateInput) error {
	ctx, span := s.startSpan(ctx, "AchievementUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.UpdateAchievement(ctx, entity.Achievement{
		ID:          in.ID,
		Title:       in.Title,
		Issuer:      in.Issuer,
		Date:        in.Date,
		Description: in.Description,
		Link:        in.Link,
		ImageURL:    in.ImageURL,
		SortOrder:   in.SortOrder,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Achievement not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update achievement", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) AchievementDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "AchievementDelete")
	defer span.End()

	err := s.repoDB.DeleteAchievement(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Achievement not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete achievement", "id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
