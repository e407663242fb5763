package inbound

import "net/http"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Email string `json:"email"`
}

func (RegisterResponse) Message() string {
	return "OTP sent to email"
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type RegisterVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type RegisterVerifyResponse struct{}

func (RegisterVerifyResponse) Message() string {
	return "Registration successful"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Email string `json:"email"`
}

func (LoginResponse) Message() string {
	return "OTP sent to email"
}

type LoginVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type LoginVerifyResponse struct {
	Token string `json:"token"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct {
	Email string `json:"email"`
}

func (PasswordForgotResponse) Message() string {
	return "OTP sent to email"
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password reset successful"
}
