package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gofolio/internal/auth/inbound"
	"github.com/shandysiswandi/gofolio/internal/auth/outbound/challenge"
	"github.com/shandysiswandi/gofolio/internal/auth/outbound/db"
	"github.com/shandysiswandi/gofolio/internal/auth/outbound/mq"
	"github.com/shandysiswandi/gofolio/internal/auth/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/config"
	"github.com/shandysiswandi/gofolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/gofolio/internal/pkg/hash"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/jwt"
	"github.com/shandysiswandi/gofolio/internal/pkg/mail"
	"github.com/shandysiswandi/gofolio/internal/pkg/messaging"
	"github.com/shandysiswandi/gofolio/internal/pkg/otp"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
	"github.com/shandysiswandi/gofolio/internal/pkg/uid"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Challenges challenge.Store            `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Challenges:    dep.Challenges,
		Mailer:        dep.Mailer,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		OTP:           dep.OTP,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	startSweeper(ctx, dep)

	return nil
}

// startSweeper drops expired codes and pending registrations in the
// background. Expiry is enforced on every read regardless; this only
// keeps the store from accumulating dead entries.
func startSweeper(ctx context.Context, dep Dependency) {
	interval := dep.Config.GetMinute("modules.auth.sweep_interval_minutes")
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := dep.Challenges.SweepExpired(ctx)
				if err != nil {
					slog.WarnContext(ctx, "failed to sweep expired auth challenges", "error", err)
					continue
				}
				if removed > 0 {
					slog.InfoContext(ctx, "swept expired auth challenges", "removed", removed)
				}
			}
		}
	}()
}
