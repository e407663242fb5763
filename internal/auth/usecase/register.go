package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type RegisterInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

// Register parks the submitted credentials and emails a one-time code.
// No account row is written until the code is verified.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if removed, err := s.challenges.SweepExpired(ctx); err == nil && removed > 0 {
		slog.InfoContext(ctx, "swept expired auth challenges", "removed", removed)
	}

	_, err := s.repoDB.GetAdminByUsernameOrEmail(ctx, in.Username, in.Email)
	if err == nil {
		return goerror.NewBusiness("Username or email already exists", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get admin by username or email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.auth.otp_ttl_minutes")
	if err := s.challenges.PutPending(ctx, entity.PendingRegistration{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    s.clock.Now(),
	}, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to park pending registration", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueChallenge(ctx, in.Email, entity.ChallengePurposeRegister)
}
