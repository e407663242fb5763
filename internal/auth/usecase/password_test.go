package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

func TestPasswordForgotUnknownEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.uc.PasswordForgot(ctx, PasswordForgotInput{Email: "ghost@example.com"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeNotFound {
		t.Fatalf("PasswordForgot() error = %v, want not found", err)
	}
	if f.mailer.count() != 0 {
		t.Fatal("unknown email still received a code")
	}
}

func TestPasswordResetReplacesPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")
	registerAdmin(t, f, "admin@example.com", "old-password")

	if err := f.uc.PasswordForgot(ctx, PasswordForgotInput{Email: "admin@example.com"}); err != nil {
		t.Fatalf("PasswordForgot() error = %v", err)
	}

	if err := f.uc.PasswordReset(ctx, PasswordResetInput{
		Email:       "admin@example.com",
		Code:        "654321",
		NewPassword: "new-password-1",
	}); err != nil {
		t.Fatalf("PasswordReset() error = %v", err)
	}

	// the old password no longer opens a login
	err := f.uc.Login(ctx, LoginInput{Email: "admin@example.com", Password: "old-password"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeUnauthorized {
		t.Fatalf("Login() with old password error = %v, want unauthorized", err)
	}

	if err := f.uc.Login(ctx, LoginInput{Email: "admin@example.com", Password: "new-password-1"}); err != nil {
		t.Fatalf("Login() with new password error = %v", err)
	}

	// the reset code is single use
	err = f.uc.PasswordReset(ctx, PasswordResetInput{
		Email:       "admin@example.com",
		Code:        "654321",
		NewPassword: "another-password",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("PasswordReset() replay error = %v, want invalid input", err)
	}
}

func TestPasswordResetWrongCodeKeepsPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")
	registerAdmin(t, f, "admin@example.com", "old-password")

	if err := f.uc.PasswordForgot(ctx, PasswordForgotInput{Email: "admin@example.com"}); err != nil {
		t.Fatalf("PasswordForgot() error = %v", err)
	}

	err := f.uc.PasswordReset(ctx, PasswordResetInput{
		Email:       "admin@example.com",
		Code:        "000000",
		NewPassword: "new-password-1",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("PasswordReset() error = %v, want invalid input", err)
	}

	if err := f.uc.Login(ctx, LoginInput{Email: "admin@example.com", Password: "old-password"}); err != nil {
		t.Fatalf("Login() with old password after failed reset error = %v", err)
	}
}

func TestPasswordResetValidatesNewPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")
	registerAdmin(t, f, "admin@example.com", "old-password")

	if err := f.uc.PasswordForgot(ctx, PasswordForgotInput{Email: "admin@example.com"}); err != nil {
		t.Fatalf("PasswordForgot() error = %v", err)
	}

	err := f.uc.PasswordReset(ctx, PasswordResetInput{
		Email:       "admin@example.com",
		Code:        "654321",
		NewPassword: "short",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("PasswordReset() error = %v, want invalid input", err)
	}
}
