package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Email string `validate:"required,email"`
}

// PasswordForgot emails a one-time code to a known account. Unknown
// emails get a 404; the reset surface is for the site owner only, so
// enumeration is not a concern here.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) error {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetAdminByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password forgot for unknown email", "email", in.Email)
		return goerror.NewBusiness("Email not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueChallenge(ctx, in.Email, entity.ChallengePurposePasswordReset)
}
