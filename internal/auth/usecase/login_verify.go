package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type LoginVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

type LoginVerifyOutput struct {
	Token string
}

// LoginVerify checks the code issued by Login and returns a signed
// token. The code is removed only after the token is issued.
func (s *Usecase) LoginVerify(ctx context.Context, in LoginVerifyInput) (*LoginVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginVerify")
	defer span.End()

	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.verifyChallenge(ctx, in.Email, in.Code, entity.ChallengePurposeLogin); err != nil {
		return nil, err
	}

	admin, err := s.repoDB.GetAdminByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "admin account vanished after login challenge", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(admin.ID, admin.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "admin_id", admin.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.challenges.DeleteCode(ctx, in.Email); err != nil {
		slog.WarnContext(ctx, "failed to delete one-time code", "email", in.Email, "error", err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishAdminLoggedIn(ctx, AdminLoggedInEvent{
			AdminID:    admin.ID,
			Username:   admin.Username,
			OccurredAt: s.clock.Now(),
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish admin logged in event", "admin_id", admin.ID, "error", err)
		}
		return nil
	})

	return &LoginVerifyOutput{Token: token}, nil
}
