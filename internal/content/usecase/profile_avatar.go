package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type ProfileUpdateAvatarInput struct {
	File        io.Reader
	ContentType string
}

type ProfileUpdateAvatarOutput struct {
	AvatarURL string
}

// ProfileUpdateAvatar stores a new avatar image and points the
// profile at it. The previous avatar object is removed afterwards.
func (s *Usecase) ProfileUpdateAvatar(ctx context.Context, in ProfileUpdateAvatarInput) (*ProfileUpdateAvatarOutput, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdateAvatar")
	defer span.End()

	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "avatar", "avatar file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := imageContentTypeExt[contentType]
	if !ok {
		return nil, goerror.NewInvalidInput(nil, "avatar", "unsupported avatar content type")
	}

	profile, err := s.repoDB.GetLatestProfile(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Profile not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get latest profile", "error", err)
		return nil, goerror.NewServer(err)
	}

	avatarURL, err := s.uploadObject(ctx, "avatars", contentType, ext, in.File)
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.UpdateProfileAvatar(ctx, profile.ID, avatarURL); err != nil {
		slog.ErrorContext(ctx, "failed to repo update profile avatar", "id", profile.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if profile.AvatarURL != "" && profile.AvatarURL != avatarURL {
		s.removeObjects(ctx, []string{profile.AvatarURL})
	}

	return &ProfileUpdateAvatarOutput{AvatarURL: avatarURL}, nil
}
