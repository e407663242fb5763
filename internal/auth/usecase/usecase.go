package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/auth/outbound/challenge"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/config"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
	"github.com/shandysiswandi/gofolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/gofolio/internal/pkg/hash"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/jwt"
	"github.com/shandysiswandi/gofolio/internal/pkg/mail"
	"github.com/shandysiswandi/gofolio/internal/pkg/otp"
	"github.com/shandysiswandi/gofolio/internal/pkg/uid"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type AdminRegisteredEvent struct {
	AdminID    int64
	Username   string
	Email      string
	OccurredAt time.Time
}

type AdminLoggedInEvent struct {
	AdminID    int64
	Username   string
	OccurredAt time.Time
}

type PasswordResetEvent struct {
	AdminID    int64
	OccurredAt time.Time
}

type repoMessaging interface {
	PublishAdminRegistered(ctx context.Context, msg AdminRegisteredEvent) error
	PublishAdminLoggedIn(ctx context.Context, msg AdminLoggedInEvent) error
	PublishPasswordReset(ctx context.Context, msg PasswordResetEvent) error
}

type repoDB interface {
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	GetAdminByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Admin, error)
	CreateAdmin(ctx context.Context, a entity.Admin) error
	UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	challenges    challenge.Store
	mailer        mail.Mail
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	otp           otp.Generator
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Challenges    challenge.Store
	Mailer        mail.Mail
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	OTP           otp.Generator
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		challenges:    dep.Challenges,
		mailer:        dep.Mailer,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		otp:           dep.OTP,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// issueChallenge generates a fresh code for the email, stores it with
// the configured deadline and mails it. Any earlier code for the same
// email is replaced, whatever flow issued it.
func (s *Usecase) issueChallenge(ctx context.Context, email string, purpose entity.ChallengePurpose) error {
	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate one-time code", "error", err)
		return goerror.NewServer(err)
	}

	entry := challenge.Entry{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: s.clock.Now().Add(s.cfg.GetMinute("modules.auth.otp_ttl_minutes")),
	}
	if err := s.challenges.PutCode(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to store one-time code", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:       []string{email},
		Subject:  "Admin Verification OTP",
		TextBody: "Your one-time password (OTP) for verification is: " + code + "\nThis OTP expires in 10 minutes. Please do not share it with anyone.",
		HTMLBody: otpEmailHTML(code),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send one-time code email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

// verifyChallenge checks the submitted code against the stored entry.
// The stored entry stays in place on success; the caller removes it
// after its flow commits.
func (s *Usecase) verifyChallenge(ctx context.Context, email, code string, purpose entity.ChallengePurpose) error {
	entry, err := s.challenges.GetCode(ctx, email)
	if err != nil {
		slog.WarnContext(ctx, "one-time code not found or expired", "email", email)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	if entry.Code != code || entry.Purpose != purpose {
		slog.WarnContext(ctx, "one-time code mismatch", "email", email, "purpose", purpose)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	return nil
}

func otpEmailHTML(code string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f4f4f9; border-radius: 10px;">
  <h2 style="color: #333; text-align: center;">Admin Authentication</h2>
  <p style="color: #555; font-size: 16px;">Hello,</p>
  <p style="color: #555; font-size: 16px;">Your one-time password (OTP) for verification is:</p>
  <div style="background-color: #fff; padding: 15px; text-align: center; border-radius: 8px; border: 1px solid #ddd;">
    <h3 style="color: #4f46e5; font-size: 24px; margin: 0;">%s</h3>
  </div>
  <p style="color: #555; font-size: 14px; margin-top: 20px;">This OTP expires in 10 minutes. Please do not share it with anyone.</p>
</div>`, code)
}
