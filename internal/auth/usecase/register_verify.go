package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type RegisterVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

// RegisterVerify checks the code and, on match, promotes the parked
// credentials into a persisted account. The code and the pending entry
// are only removed after the account commit succeeds.
func (s *Usecase) RegisterVerify(ctx context.Context, in RegisterVerifyInput) error {
	ctx, span := s.startSpan(ctx, "RegisterVerify")
	defer span.End()

	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.verifyChallenge(ctx, in.Email, in.Code, entity.ChallengePurposeRegister); err != nil {
		return err
	}

	pending, err := s.challenges.GetPending(ctx, in.Email)
	if err != nil {
		slog.WarnContext(ctx, "no pending registration for email", "email", in.Email)
		return goerror.NewBusiness("No pending registration found", goerror.CodeInvalidInput)
	}

	now := s.clock.Now()
	admin := entity.Admin{
		ID:           s.uid.Generate(),
		Username:     pending.Username,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repoDB.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Username or email already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create admin", "email", admin.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.challenges.DeleteCode(ctx, in.Email); err != nil {
		slog.WarnContext(ctx, "failed to delete one-time code", "email", in.Email, "error", err)
	}
	if err := s.challenges.DeletePending(ctx, in.Email); err != nil {
		slog.WarnContext(ctx, "failed to delete pending registration", "email", in.Email, "error", err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishAdminRegistered(ctx, AdminRegisteredEvent{
			AdminID:    admin.ID,
			Username:   admin.Username,
			Email:      admin.Email,
			OccurredAt: now,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish admin registered event", "admin_id", admin.ID, "error", err)
		}
		return nil
	})

	return nil
}
