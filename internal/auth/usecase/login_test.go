package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

func registerAdmin(t *testing.T, f *fixture, email, password string) {
	t.Helper()

	ctx := context.Background()
	if err := f.uc.Register(ctx, RegisterInput{
		Username: "razakhan",
		Email:    email,
		Password: password,
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	entry, err := f.store.GetCode(ctx, email)
	if err != nil {
		t.Fatalf("GetCode() error = %v", err)
	}
	if err := f.uc.RegisterVerify(ctx, RegisterVerifyInput{Email: email, Code: entry.Code}); err != nil {
		t.Fatalf("RegisterVerify() error = %v", err)
	}
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")
	registerAdmin(t, f, "admin@example.com", "s3cret-pass")

	sentBefore := f.mailer.count()

	errUnknown := f.uc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "s3cret-pass"})
	errWrongPass := f.uc.Login(ctx, LoginInput{Email: "admin@example.com", Password: "bad-password"})

	for _, err := range []error{errUnknown, errWrongPass} {
		if code, ok := codeStatus(err); !ok || code != goerror.CodeUnauthorized {
			t.Fatalf("Login() error = %v, want unauthorized", err)
		}
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Msg() != "Invalid credentials" {
			t.Fatalf("Login() message = %v, want uniform %q", err, "Invalid credentials")
		}
	}

	if f.mailer.count() != sentBefore {
		t.Fatal("failed login still sent a code email")
	}
}

func TestLoginVerifyIssuesToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")
	registerAdmin(t, f, "admin@example.com", "s3cret-pass")

	if err := f.uc.Login(ctx, LoginInput{Email: "admin@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	out, err := f.uc.LoginVerify(ctx, LoginVerifyInput{Email: "admin@example.com", Code: "654321"})
	if err != nil {
		t.Fatalf("LoginVerify() error = %v", err)
	}
	if out.Token == "" {
		t.Fatal("LoginVerify() returned empty token")
	}

	admin, err := f.db.GetAdminByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetAdminByEmail() error = %v", err)
	}

	claims, err := f.uc.jwt.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Errorf("claims.AdminID = %d, want %d", claims.AdminID, admin.ID)
	}
	if claims.Username != "razakhan" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "razakhan")
	}

	// code is single use
	if _, err := f.uc.LoginVerify(ctx, LoginVerifyInput{Email: "admin@example.com", Code: "654321"}); err == nil {
		t.Fatal("LoginVerify() replay succeeded")
	}
}

func TestLoginVerifyWrongCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321")
	registerAdmin(t, f, "admin@example.com", "s3cret-pass")

	if err := f.uc.Login(ctx, LoginInput{Email: "admin@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	out, err := f.uc.LoginVerify(ctx, LoginVerifyInput{Email: "admin@example.com", Code: "000000"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("LoginVerify() error = %v, want invalid input", err)
	}
	if out != nil {
		t.Fatal("LoginVerify() returned output despite wrong code")
	}

	// the stored code survives a failed attempt
	if _, err := f.store.GetCode(ctx, "admin@example.com"); err != nil {
		t.Fatal("stored code removed by failed attempt")
	}
}

func TestLoginVerifyRejectsCodeFromOtherFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "123456", "654321", "777777")
	registerAdmin(t, f, "admin@example.com", "s3cret-pass")

	// a password-reset code must not complete a login
	if err := f.uc.PasswordForgot(ctx, PasswordForgotInput{Email: "admin@example.com"}); err != nil {
		t.Fatalf("PasswordForgot() error = %v", err)
	}

	entry, err := f.store.GetCode(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetCode() error = %v", err)
	}

	_, err = f.uc.LoginVerify(ctx, LoginVerifyInput{Email: "admin@example.com", Code: entry.Code})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("LoginVerify() with reset code error = %v, want invalid input", err)
	}
}
