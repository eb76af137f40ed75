package api

import (
	"context"
	"net/http"

	"partner-dashboard/internal/models"
)

const (
	notificationsRoute = "/partners/notifications"
	markReadRoute      = "/partners/notifications/open"
)

// NotificationsPage is one page of the notification feed. Each fetch
// replaces the previous page wholesale; pages are never merged.
type NotificationsPage struct {
	Total         int                   `json:"total"`
	Pagination    models.Pagination     `json:"pagination" validate:"required"`
	Notifications []models.Notification `json:"notifications" validate:"dive"`
}

type notificationsResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Data    *NotificationsPage `json:"data" validate:"required"`
}

// GetNotifications fetches one page of notifications, newest first.
func (c *Client) GetNotifications(ctx context.Context, token string, page int) (*NotificationsPage, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	var resp notificationsResponse
	if err := c.do(ctx, http.MethodGet, notificationsRoute, token, pageQuery(page), nil, &resp, "notifications", "fetch notifications"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type markReadRequest struct {
	NotificationIDs []int `json:"notificationIds"`
}

type markReadResponse struct {
	Status string `json:"status" validate:"required"`
}

// MarkNotificationsRead asks the backend to flag the given notifications as
// opened. Callers must only flip local read state after this returns nil.
func (c *Client) MarkNotificationsRead(ctx context.Context, token string, ids []int) error {
	if token == "" {
		return ErrNotAuthenticated
	}
	var resp markReadResponse
	return c.do(ctx, http.MethodPut, markReadRoute, token, nil, markReadRequest{NotificationIDs: ids}, &resp, "response", "mark notifications as read")
}
