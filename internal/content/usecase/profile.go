package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
	"github.com/shandysiswandi/gofolio/internal/pkg/valueobject"
)

// ProfileGet returns the site owner's profile, or nil when none has
// been created yet.
func (s *Usecase) ProfileGet(ctx context.Context) (*entity.Profile, error) {
	ctx, span := s.startSpan(ctx, "ProfileGet")
	defer span.End()

	p, err := s.repoDB.GetLatestProfile(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get latest profile", "error", err)
		return nil, goerror.NewServer(err)
	}

	return p, nil
}

type ProfileUpsertInput struct {
	Name    string `validate:"required,max=100"`
	Title   string `validate:"max=150"`
	Summary string `validate:"max=2000"`
	Email   string `validate:"omitempty,email"`
	Phone   string `validate:"max=30"`
	Website string `validate:"omitempty,url"`
	Socials map[string]string
}

// ProfileUpsert creates the profile on first use and replaces its
// fields afterwards. The avatar is managed separately and survives
// the upsert.
func (s *Usecase) ProfileUpsert(ctx context.Context, in ProfileUpsertInput) (*entity.Profile, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpsert")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	socials := valueobject.JSONMap{}
	for k, v := range in.Socials {
		socials.Set(k, v)
	}

	current, err := s.repoDB.GetLatestProfile(ctx)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get latest profile", "error", err)
		return nil, goerror.NewServer(err)
	}

	if current == nil {
		p := entity.Profile{
			ID:        s.uid.Generate(),
			Name:      in.Name,
			Title:     in.Title,
			Summary:   in.Summary,
			Email:     in.Email,
			Phone:     in.Phone,
			Website:   in.Website,
			Socials:   socials,
			CreatedAt: s.clock.Now(),
		}
		p.UpdatedAt = p.CreatedAt

		if err := s.repoDB.CreateProfile(ctx, p); err != nil {
			slog.ErrorContext(ctx, "failed to repo create profile", "error", err)
			return nil, goerror.NewServer(err)
		}

		return &p, nil
	}

	current.Name = in.Name
	current.Title = in.Title
	current.Summary = in.Summary
	current.Email = in.Email
	current.Phone = in.Phone
	current.Website = in.Website
	current.Socials = socials
	current.UpdatedAt = s.clock.Now()

	if err := s.repoDB.UpdateProfile(ctx, *current); err != nil {
		slog.ErrorContext(ctx, "failed to repo update profile", "id", current.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return current, nil
}
