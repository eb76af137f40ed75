package api

import (
	"context"
	"net/http"
)

const (
	apiKeyRoute         = "/partners/settings/api-key"
	sandboxAPIKeyRoute  = "/partners/settings/api-key/sandbox"
	changePasswordRoute = "/partners/settings/change-password"
)

type apiKeyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		APIKey string `json:"apiKey" validate:"required"`
	} `json:"data" validate:"required"`
}

func (c *Client) apiKey(ctx context.Context, method, route, token string) (string, error) {
	if token == "" {
		return "", ErrNotAuthenticated
	}
	verb := "fetch API key"
	if method == http.MethodPost {
		verb = "generate API key"
	}
	var resp apiKeyResponse
	if err := c.do(ctx, method, route, token, nil, nil, &resp, "API key", verb); err != nil {
		return "", err
	}
	return resp.Data.APIKey, nil
}

// GetAPIKey fetches the partner's live API key.
func (c *Client) GetAPIKey(ctx context.Context, token string) (string, error) {
	return c.apiKey(ctx, http.MethodGet, apiKeyRoute, token)
}

// GenerateAPIKey rotates the live API key and returns the new value. The
// previous key stops working immediately.
func (c *Client) GenerateAPIKey(ctx context.Context, token string) (string, error) {
	return c.apiKey(ctx, http.MethodPost, apiKeyRoute, token)
}

// GetSandboxAPIKey fetches the sandbox API key.
func (c *Client) GetSandboxAPIKey(ctx context.Context, token string) (string, error) {
	return c.apiKey(ctx, http.MethodGet, sandboxAPIKeyRoute, token)
}

// GenerateSandboxAPIKey rotates the sandbox API key.
func (c *Client) GenerateSandboxAPIKey(ctx context.Context, token string) (string, error) {
	return c.apiKey(ctx, http.MethodPost, sandboxAPIKeyRoute, token)
}

// ChangePasswordRequest mirrors the settings form: the new password must be
// at least eight characters and confirmed.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type changePasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" validate:"required"`
}

// ChangePassword updates the account password and returns the backend's
// confirmation message.
func (c *Client) ChangePassword(ctx context.Context, token string, req ChangePasswordRequest) (string, error) {
	if token == "" {
		return "", ErrNotAuthenticated
	}
	if err := validate.Struct(req); err != nil {
		return "", &SchemaError{Resource: "change password request", Err: err}
	}
	var resp changePasswordResponse
	if err := c.do(ctx, http.MethodPost, changePasswordRoute, token, nil, req, &resp, "change password", "change password"); err != nil {
		return "", err
	}
	return resp.Message, nil
}
