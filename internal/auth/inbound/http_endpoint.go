package inbound

import (
	"github.com/shandysiswandi/gofolio/internal/auth/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the admin authentication flows.
type HTTPEndpoint struct {
	uc uc
}

// Register starts the two-step registration flow.
// @Summary Register admin
// @Description Parks the submitted credentials and sends a one-time code to the email. No account is created yet.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} router.successResponse{data=RegisterResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username or email already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return RegisterResponse{Email: req.Email}, nil
}

// RegisterVerify completes registration with the emailed code.
// @Summary Verify registration code
// @Description Checks the one-time code and persists the parked account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=RegisterVerifyResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username or email already exists"
// @Failure 422 {object} router.errorResponse "Invalid or expired code"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register/verify [post]
func (h *HTTPEndpoint) RegisterVerify(r *router.Request) (any, error) {
	var req RegisterVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegisterVerify(r.Context(), usecase.RegisterVerifyInput{
		Email: req.Email,
		Code:  req.OTP,
	}); err != nil {
		return nil, err
	}

	return RegisterVerifyResponse{}, nil
}

// Login starts the two-step login flow.
// @Summary Authenticate admin
// @Description Checks the password and sends a one-time code to the email. No token is issued yet.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return LoginResponse{Email: req.Email}, nil
}

// LoginVerify completes login with the emailed code and issues a token.
// @Summary Verify login code
// @Description Checks the one-time code and returns a signed access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=LoginVerifyResponse} "Access token"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Invalid or expired code"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login/verify [post]
func (h *HTTPEndpoint) LoginVerify(r *router.Request) (any, error) {
	var req LoginVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginVerify(r.Context(), usecase.LoginVerifyInput{
		Email: req.Email,
		Code:  req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return LoginVerifyResponse{Token: resp.Token}, nil
}

// PasswordForgot starts the password recovery flow.
// @Summary Request password reset code
// @Description Sends a one-time code to the email when an account exists for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body PasswordForgotRequest true "Recovery payload"
// @Success 200 {object} router.successResponse{data=PasswordForgotResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Email not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/password/forgot [post]
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return PasswordForgotResponse{Email: req.Email}, nil
}

// PasswordReset completes password recovery with the emailed code.
// @Summary Reset password
// @Description Checks the one-time code and replaces the stored password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset payload"
// @Success 200 {object} router.successResponse{data=PasswordResetResponse} "Password replaced"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Email not found"
// @Failure 422 {object} router.errorResponse "Invalid or expired code"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		Code:        req.OTP,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}
