package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login checks the password and, on match, emails a one-time code.
// A wrong email and a wrong password produce the same answer so the
// endpoint does not leak which accounts exist.
func (s *Usecase) Login(ctx context.Context, in LoginInput) error {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	admin, err := s.repoDB.GetAdminByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "admin account not found", "email", in.Email)
		return goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(admin.PasswordHash, in.Password) {
		slog.WarnContext(ctx, "admin password does not match", "admin_id", admin.ID)
		return goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}

	return s.issueChallenge(ctx, in.Email, entity.ChallengePurposeLogin)
}
