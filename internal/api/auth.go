package api

import (
	"context"
	"net/http"

	"partner-dashboard/internal/models"
)

const (
	loginRoute   = "/partners/auth/login"
	profileRoute = "/partners/profile"
)

// LoginRequest carries the credentials submitted on sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *models.Partner `json:"data" validate:"required"`
}

// Login authenticates and returns the partner record, including the bearer
// authorization. The credentials are checked locally before any request goes
// out, mirroring the dashboard's form validation.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Partner, error) {
	req := LoginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return nil, &SchemaError{Resource: "login request", Err: err}
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, loginRoute, "", nil, req, &resp, "login", "log in"); err != nil {
		return nil, err
	}
	if resp.Data.Authorization == nil || resp.Data.Authorization.Token == "" {
		return nil, &SchemaError{Resource: "login"}
	}
	return resp.Data, nil
}

type profileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *models.Partner `json:"data" validate:"required"`
}

// GetProfile fetches the authenticated partner's profile, including the
// authoritative unread-notification count and wallet balance.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.Partner, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	var resp profileResponse
	if err := c.do(ctx, http.MethodGet, profileRoute, token, nil, nil, &resp, "profile", "fetch profile"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
