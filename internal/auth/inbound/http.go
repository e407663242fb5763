package inbound

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/auth/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	RegisterVerify(ctx context.Context, in usecase.RegisterVerifyInput) error

	Login(ctx context.Context, in usecase.LoginInput) error
	LoginVerify(ctx context.Context, in usecase.LoginVerifyInput) (*usecase.LoginVerifyOutput, error)

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Two-step registration
	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/register/verify", end.RegisterVerify)

	// Two-step login
	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/login/verify", end.LoginVerify)

	// Password recovery
	r.POST("/api/v1/auth/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/auth/password/reset", end.PasswordReset)
}
