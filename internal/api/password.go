package api

import (
	"context"
	"net/http"
)

const (
	passwordRequestRoute = "/partners/auth/password-request"
	passwordResetRoute   = "/partners/auth/password-reset"
)

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" validate:"required"`
}

// RequestPasswordReset asks the backend to mail a one-time reset code to the
// given address. Returns the confirmation message.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	req := passwordResetRequest{Email: email}
	if err := validate.Struct(req); err != nil {
		return "", &SchemaError{Resource: "password reset request", Err: err}
	}
	var resp passwordResetResponse
	if err := c.do(ctx, http.MethodPost, passwordRequestRoute, "", nil, req, &resp, "password reset", "request password reset"); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPasswordRequest carries the emailed one-time code and the new
// password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type resetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Email string `json:"email" validate:"required,email"`
	} `json:"data" validate:"required"`
}

// ResetPassword redeems a one-time code and sets a new password. Returns the
// email of the account that was reset.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", &SchemaError{Resource: "reset password request", Err: err}
	}
	var resp resetPasswordResponse
	if err := c.do(ctx, http.MethodPut, passwordResetRoute, "", nil, req, &resp, "reset password", "reset password"); err != nil {
		return "", err
	}
	return resp.Data.Email, nil
}
