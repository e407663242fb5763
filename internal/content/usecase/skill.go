package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

// SkillList returns all skills in display order.
func (s *Usecase) SkillList(ctx context.Context) ([]entity.Skill, error) {
	ctx, span := s.startSpan(ctx, "SkillList")
	defer span.End()

	out, err := s.repoDB.ListSkills(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list skills", "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

type SkillCreateInput struct {
	Name      string `validate:"required,max=100"`
	Level     string `validate:"max=50"`
	Percent   int16  `validate:"gte=0,lte=100"`
	Category  string `validate:"max=100"`
	SortOrder int32
}

func (s *Usecase) SkillCreate(ctx context.Context, in SkillCreateInput) (*entity.Skill, error) {
	ctx, span := s.startSpan(ctx, "SkillCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	sk := entity.Skill{
		ID:        s.uid.Generate(),
		Name:      in.Name,
		Level:     in.Level,
		Percent:   in.Percent,
		Category:  in.Category,
		SortOrder: in.SortOrder,
		CreatedAt: s.clock.Now(),
	}
	sk.UpdatedAt = sk.CreatedAt

	if err := s.repoDB.CreateSkill(ctx, sk); err != nil {
		slog.ErrorContext(ctx, "failed to repo create skill", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &sk, nil
}

type SkillUpdateInput struct {
	ID        int64  `validate:"required"`
	Name      string `validate:"required,max=100"`
	Level     string `validate:"max=50"`
	Percent   int16  `validate:"gte=0,lte=100"`
	Category  string `validate:"max=100"`
	SortOrder int32
}

func (s *Usecase) SkillUpdate(ctx context.Context, in SkillUpdateInput) error {
	ctx, span := s.startSpan(ctx, "SkillUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.UpdateSkill(ctx, entity.Skill{
		ID:        in.ID,
		Name:      in.Name,
		Level:     in.Level,
		Percent:   in.Percent,
		Category:  in.Category,
		SortOrder: in.SortOrder,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Skill not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update skill", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) SkillDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "SkillDelete")
	defer span.End()

	err := s.repoDB.DeleteSkill(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Skill not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete skill", "id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
