package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginBody = `{
	"success": true,
	"message": "Login successful",
	"data": {
		"id": 1,
		"name": "Acme Power Resellers",
		"email": "partner@example.com",
		"phone": "+2348012345678",
		"device_token": null,
		"role": "partner",
		"isActive": 1,
		"createdAt": "2024-06-01T09:00:00Z",
		"updatedAt": "2025-05-01T09:00:00Z",
		"deletedAt": null,
		"wallet": {"balance": "1845200.50"},
		"authorization": {"token": "abc", "expiresIn": 3600}
	}
}`

func TestLogin_Success(t *testing.T) {
	var gotPath, gotNgrok string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotNgrok = r.Header.Get("ngrok-skip-browser-warning")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(loginBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	partner, err := c.Login(context.Background(), "partner@example.com", "vendtokens1")
	require.NoError(t, err)
	assert.Equal(t, "/partners/auth/login", gotPath)
	assert.Equal(t, "true", gotNgrok)
	require.NotNil(t, partner.Authorization)
	assert.Equal(t, "abc", partner.Authorization.Token)
	assert.Equal(t, 3600, partner.Authorization.ExpiresIn)
	assert.Equal(t, "1845200.50", partner.Wallet.Balance)
}

func TestLogin_RejectsBadEmailLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	assert.True(t, IsSchema(err))
	assert.False(t, called, "invalid credentials should never reach the backend")
}

func TestLogin_HTTPErrorUsesBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "Invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "partner@example.com", "wrong-password")
	require.Error(t, err)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, "Invalid email or password", httpErr.Message)
}

func TestLogin_MissingAuthorizationIsSchemaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "message": "ok", "data": {
			"id": 1, "name": "Acme", "email": "partner@example.com",
			"wallet": {"balance": "10.00"}
		}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "partner@example.com", "vendtokens1")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid login data format received")
}

func TestGetProfile_RequiresToken(t *testing.T) {
	c := NewClient("http://127.0.0.1:0")
	_, err := c.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGetWalletTransactions_Pagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/partners/wallet-transactions", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status": "success", "message": "ok", "data": {
			"total": 45,
			"pagination": {"prevPage": 1, "currentPage": 2, "nextPage": 3, "pageTotal": 5, "pageSize": 10},
			"transactions": [{
				"id": 7, "type": "credit", "description": "Wallet top-up",
				"partner_id": 1, "email": "partner@example.com",
				"amount": "25000.00", "prev_balance": "100.00", "curr_balance": "25100.00",
				"confirmed": true, "reference": "WLT-00007", "genus": "wallet",
				"status": "successful", "createdAt": "2025-05-01T09:00:00Z",
				"updatedAt": "2025-05-01T09:00:00Z", "deletedAt": null
			}]
		}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.GetWalletTransactions(context.Background(), "abc", 2)
	require.NoError(t, err)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 5, page.Pagination.PageTotal)
	assert.True(t, page.Pagination.HasPrev())
	assert.True(t, page.Pagination.HasNext())
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "WLT-00007", page.Transactions[0].Reference)
}

func TestGetConsumerTransactions_MissingPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "message": "ok", "data": {"total": 3, "transactions": []}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetConsumerTransactions(context.Background(), "abc", 1)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid consumer transactions data format received")
	assert.True(t, IsSchema(err))
}

func TestGetNotifications_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening any more

	c := NewClient(srv.URL)
	_, err := c.GetNotifications(context.Background(), "abc", 1)
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.EqualError(t, err, "Network error: Unable to connect to server")
}

func TestMarkNotificationsRead_SendsIDs(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/partners/notifications/open", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"status": "success"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.MarkNotificationsRead(context.Background(), "abc", []int{4, 9})
	require.NoError(t, err)
	assert.JSONEq(t, `{"notificationIds": [4, 9]}`, gotBody)
}

func TestChangePassword_MismatchRejectedLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ChangePassword(context.Background(), "abc", ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
		ConfirmPassword: "different-password",
	})
	require.Error(t, err)
	assert.True(t, IsSchema(err))
	assert.False(t, called)
}

func TestHTTPError_FallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetWalletTransactions(context.Background(), "abc", 1)
	require.Error(t, err)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Failed to fetch wallet transactions: Service Unavailable", httpErr.Message)
}
