package api

import (
	"context"
	"net/http"

	"partner-dashboard/internal/models"
)

const dashboardRoute = "/partners/dashboard"

type analyticsResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    *models.DashboardAnalytics `json:"data" validate:"required"`
}

// GetDashboardAnalytics fetches the landing-page KPI highlights, trend
// series, and recent transactions.
func (c *Client) GetDashboardAnalytics(ctx context.Context, token string) (*models.DashboardAnalytics, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	var resp analyticsResponse
	if err := c.do(ctx, http.MethodGet, dashboardRoute, token, nil, nil, &resp, "dashboard analytics", "fetch dashboard analytics"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
