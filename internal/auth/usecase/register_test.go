package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

func TestRegisterParksCredentialsWithoutCreatingAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456")

	err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "Admin@Example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if f.db.count() != 0 {
		t.Fatalf("Register() created %d admins, want 0", f.db.count())
	}

	pending, err := f.store.GetPending(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetPending() error = %v", err)
	}
	if pending.Username != "razakhan" {
		t.Errorf("pending.Username = %q, want %q", pending.Username, "razakhan")
	}
	if pending.PasswordHash == "s3cret-pass" {
		t.Error("pending password stored in plaintext")
	}

	entry, err := f.store.GetCode(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetCode() error = %v", err)
	}
	if entry.Code != "123456" {
		t.Errorf("entry.Code = %q, want %q", entry.Code, "123456")
	}

	if f.mailer.count() != 1 {
		t.Fatalf("sent %d emails, want 1", f.mailer.count())
	}
}

func TestRegisterConflictIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")

	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "123456",
	}); err != nil {
		t.Fatalf("RegisterVerify() error = %v", err)
	}

	err := f.uc.Register(ctx, RegisterInput{
		Username: "RAZAKHAN",
		Email:    "other@example.com",
		Password: "s3cret-pass",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeConflict {
		t.Fatalf("Register() with taken username error = %v, want conflict", err)
	}

	err = f.uc.Register(ctx, RegisterInput{
		Username: "someoneelse",
		Email:    "ADMIN@example.com",
		Password: "s3cret-pass",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeConflict {
		t.Fatalf("Register() with taken email error = %v, want conflict", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing email", RegisterInput{Username: "razakhan", Password: "s3cret-pass"}},
		{"bad email", RegisterInput{Username: "razakhan", Email: "nope", Password: "s3cret-pass"}},
		{"short password", RegisterInput{Username: "razakhan", Email: "a@b.c", Password: "short"}},
		{"bad username", RegisterInput{Username: "x", Email: "a@b.c", Password: "s3cret-pass"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.uc.Register(ctx, tc.in)
			if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
				t.Fatalf("Register() error = %v, want invalid input", err)
			}
		})
	}

	if f.mailer.count() != 0 {
		t.Fatalf("sent %d emails for invalid input, want 0", f.mailer.count())
	}
}

func TestRegisterMailFailureKeepsChallenge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456")
	f.mailer.sendErr = errSMTPDown

	err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInternal {
		t.Fatalf("Register() with failing mailer error = %v, want server error", err)
	}

	// code and parked credentials survive so a retry can still verify
	if _, err := f.store.GetCode(ctx, "admin@example.com"); err != nil {
		t.Fatalf("GetCode() after mail failure error = %v", err)
	}
	if _, err := f.store.GetPending(ctx, "admin@example.com"); err != nil {
		t.Fatalf("GetPending() after mail failure error = %v", err)
	}

	f.mailer.sendErr = nil

	if err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "123456",
	}); err != nil {
		t.Fatalf("RegisterVerify() after mail failure error = %v", err)
	}
	if f.db.count() != 1 {
		t.Fatalf("created %d admins, want 1", f.db.count())
	}
}

func TestRegisterVerifySuccessCreatesAdminOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456")

	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "123456",
	}); err != nil {
		t.Fatalf("RegisterVerify() error = %v", err)
	}

	if f.db.count() != 1 {
		t.Fatalf("created %d admins, want 1", f.db.count())
	}

	admin, err := f.db.GetAdminByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetAdminByEmail() error = %v", err)
	}
	if admin.Username != "razakhan" {
		t.Errorf("admin.Username = %q, want %q", admin.Username, "razakhan")
	}

	// both transient entries must be gone
	if _, err := f.store.GetCode(ctx, "admin@example.com"); err == nil {
		t.Error("one-time code survived successful verification")
	}
	if _, err := f.store.GetPending(ctx, "admin@example.com"); err == nil {
		t.Error("pending registration survived successful verification")
	}

	// the code cannot be replayed
	err = f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "123456",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("RegisterVerify() replay error = %v, want invalid input", err)
	}
	if f.db.count() != 1 {
		t.Fatalf("replay created admins, have %d want 1", f.db.count())
	}
}

func TestRegisterVerifyWrongCodeMutatesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456")

	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "000000",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("RegisterVerify() error = %v, want invalid input", err)
	}

	if f.db.count() != 0 {
		t.Fatal("wrong code still created an admin")
	}
	if _, err := f.store.GetCode(ctx, "admin@example.com"); err != nil {
		t.Error("stored code removed by failed attempt")
	}
	if _, err := f.store.GetPending(ctx, "admin@example.com"); err != nil {
		t.Error("pending registration removed by failed attempt")
	}
}

func TestRegisterVerifyExpiredCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456")

	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	f.clock.Advance(10 * time.Minute)

	err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "123456",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("RegisterVerify() after expiry error = %v, want invalid input", err)
	}
	if f.db.count() != 0 {
		t.Fatal("expired code still created an admin")
	}
}

func TestRegisterReissueInvalidatesPreviousCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "111111", "222222")

	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("second Register() error = %v", err)
	}

	err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "111111",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("RegisterVerify() with superseded code error = %v, want invalid input", err)
	}

	if err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{
		Email: "admin@example.com",
		Code:  "222222",
	}); err != nil {
		t.Fatalf("RegisterVerify() with current code error = %v", err)
	}
}
