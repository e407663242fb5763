package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Email       string `validate:"required,email"`
	Code        string `validate:"required,len=6,numeric"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset checks the code issued by PasswordForgot and replaces
// the stored password hash. The code is removed only after the update
// commits.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.verifyChallenge(ctx, in.Email, in.Code, entity.ChallengePurposePasswordReset); err != nil {
		return err
	}

	admin, err := s.repoDB.GetAdminByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset for unknown email", "email", in.Email)
		return goerror.NewBusiness("Email not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "admin_id", admin.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateAdminPassword(ctx, admin.ID, string(hashedPassword)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update admin password", "admin_id", admin.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.challenges.DeleteCode(ctx, in.Email); err != nil {
		slog.WarnContext(ctx, "failed to delete one-time code", "email", in.Email, "error", err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishPasswordReset(ctx, PasswordResetEvent{
			AdminID:    admin.ID,
			OccurredAt: s.clock.Now(),
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish password reset event", "admin_id", admin.ID, "error", err)
		}
		return nil
	})

	return nil
}
