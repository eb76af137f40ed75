package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"partner-dashboard/internal/stub"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cli runs one partnerctl invocation against a shared stub backend and
// session state path.
type cli struct {
	t         *testing.T
	apiURL    string
	statePath string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s, err := stub.New(stub.Config{})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return &cli{
		t:         t,
		apiURL:    srv.URL,
		statePath: filepath.Join(t.TempDir(), "session.db"),
	}
}

func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	full := append([]string{"-api", c.apiURL, "-state", c.statePath}, args...)
	err := run(full, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), err
}

func (c *cli) login() {
	c.t.Helper()
	_, err := c.run("", "login", "-email", "partner@example.com", "-password", "vendtokens1")
	require.NoError(c.t, err)
}

func TestRun_LoginWithPipedPassword(t *testing.T) {
	c := newCLI(t)
	out, err := c.run("vendtokens1\n", "login", "-email", "partner@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Password: ")
	assert.Contains(t, out, "Logged in as Acme Power Resellers (partner@example.com)")
}

func TestRun_LoginWrongPassword(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("", "login", "-email", "partner@example.com", "-password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestRun_LoginMissingEmail(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("", "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: email")
}

func TestRun_ProfileRequiresLogin(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("", "profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestRun_ProfileAfterLogin(t *testing.T) {
	c := newCLI(t)
	c.login()

	out, err := c.run("", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Power Resellers")
	assert.Contains(t, out, "₦1,845,200.50")
}

func TestRun_LogoutClearsSession(t *testing.T) {
	c := newCLI(t)
	c.login()

	_, err := c.run("", "logout")
	require.NoError(t, err)

	_, err = c.run("", "profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestRun_NotificationsListAndMarkRead(t *testing.T) {
	c := newCLI(t)
	c.login()

	out, err := c.run("", "notifications")
	require.NoError(t, err)
	assert.Contains(t, out, "●", "unread notifications carry a marker")
	assert.Contains(t, out, "Page 1 of 2 (12 total)")

	out, err = c.run("", "notifications", "-read", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "High value transaction flagged")

	// The next profile fetch reflects the decremented unread count.
	out, err = c.run("", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Unread notifications:  4")
}

func TestRun_TransactionsWalletTab(t *testing.T) {
	c := newCLI(t)
	c.login()

	out, err := c.run("", "transactions")
	require.NoError(t, err)
	assert.Contains(t, out, "REFERENCE")
	assert.Contains(t, out, "WLT-00500")

	out, err = c.run("", "transactions", "-tab", "customers", "-status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "CUSTOMER")
	assert.NotContains(t, out, "Successful")
}

func TestRun_APIKeyRotation(t *testing.T) {
	c := newCLI(t)
	c.login()

	before, err := c.run("", "apikey")
	require.NoError(t, err)
	assert.Contains(t, before, "pk_live_")

	after, err := c.run("", "apikey", "-rotate")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	sandbox, err := c.run("", "apikey", "-sandbox")
	require.NoError(t, err)
	assert.Contains(t, sandbox, "pk_sandbox_")
}

func TestRun_PasswordResetFlow(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "reset-request", "-email", "partner@example.com")
	require.NoError(t, err)

	out, err := c.run("resetpass1\n", "reset", "-code", stub.ResetCode)
	require.NoError(t, err)
	assert.Contains(t, out, "Password reset for partner@example.com")

	_, err = c.run("", "login", "-email", "partner@example.com", "-password", "resetpass1")
	require.NoError(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("", "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "frobnicate"`)
}

func TestRun_MissingCommandPrintsUsage(t *testing.T) {
	c := newCLI(t)
	out, err := c.run("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing command")
	assert.Contains(t, out, "Usage: partnerctl")
}
