// partnerctl is the terminal front end for the partner dashboard: login and
// session management, profile and analytics, the notification feed, and the
// filtered transaction views, all against the partner REST API.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"partner-dashboard/internal/api"
	"partner-dashboard/internal/profile"
	"partner-dashboard/internal/session"
	"partner-dashboard/internal/transactions"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(stdout io.Writer) {
	fmt.Fprintln(stdout, `Usage: partnerctl [-api URL] [-state PATH] <command> [flags]

Commands:
  login            Sign in and store the session
  logout           Clear the stored session
  profile          Show the partner profile and wallet balance
  analytics        Show dashboard KPIs and trend
  notifications    List notifications; -read marks one read
  transactions     List wallet or customer transactions with filters
  apikey           Show or rotate the live/sandbox API key
  change-password  Change the account password
  reset-request    Request a password-reset code by email
  reset            Redeem a reset code and set a new password
  dash             Interactive dashboard session with idle auto-logout`)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("partnerctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	apiBase := fs.String("api", "", "Backend base URL (default $PARTNER_API_BASE_URL)")
	statePath := fs.String("state", "", "Session database path (default $PARTNERCTL_STATE)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		usage(stdout)
		return fmt.Errorf("missing command")
	}

	app, err := newApp(*apiBase, *statePath, stdin, stdout)
	if err != nil {
		return err
	}
	defer app.store.Close()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	ctx := context.Background()
	switch cmd {
	case "login":
		return app.cmdLogin(ctx, rest)
	case "logout":
		app.sess.Logout()
		return nil
	case "profile":
		return app.cmdProfile(ctx)
	case "analytics":
		return app.cmdAnalytics(ctx)
	case "notifications":
		return app.cmdNotifications(ctx, rest)
	case "transactions":
		return app.cmdTransactions(ctx, rest)
	case "apikey":
		return app.cmdAPIKey(ctx, rest)
	case "change-password":
		return app.cmdChangePassword(ctx, rest)
	case "reset-request":
		return app.cmdResetRequest(ctx, rest)
	case "reset":
		return app.cmdReset(ctx, rest)
	case "dash":
		return app.cmdDash(ctx, rest)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// app wires the client, session store, and IO for one invocation.
type app struct {
	client *api.Client
	store  *session.Store
	sess   *session.Manager
	stdin  io.Reader
	stdout io.Writer
}

func newApp(apiBase, statePath string, stdin io.Reader, stdout io.Writer) (*app, error) {
	if statePath == "" {
		statePath = os.Getenv("PARTNERCTL_STATE")
	}
	if statePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state path: %w", err)
		}
		statePath = filepath.Join(dir, "partnerctl", "session.db")
		if err := os.MkdirAll(filepath.Dir(statePath), 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	store, err := session.Open(statePath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client := api.NewClient(apiBase)
	a := &app{client: client, store: store, stdin: stdin, stdout: stdout}
	a.sess = session.NewManager(store, client, func() {
		fmt.Fprintln(stdout, "Signed out.")
	})
	return a, nil
}

// requireToken fails fast when no session is stored, before any request.
func (a *app) requireToken() (string, error) {
	token := a.sess.Token()
	if token == "" {
		return "", fmt.Errorf("not logged in; run 'partnerctl login' first")
	}
	return token, nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Business email")
	password := fs.String("password", "", "Password (optional, will prompt if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("missing required flags: email")
	}

	pass := *password
	if pass == "" {
		fmt.Fprint(a.stdout, "Password: ")
		var err error
		pass, err = readPassword(a.stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(a.stdout)
	}

	partner, err := a.sess.Login(ctx, *email, pass)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Logged in as %s (%s)\n", partner.Name, partner.Email)
	return nil
}

func (a *app) cmdProfile(ctx context.Context) error {
	if _, err := a.requireToken(); err != nil {
		return err
	}
	cache := profile.NewCache(a.client, a.sess.Token)
	if err := cache.Refetch(ctx); err != nil {
		return err
	}
	renderProfile(a.stdout, cache.Snapshot().Profile)
	return nil
}

func (a *app) cmdAnalytics(ctx context.Context) error {
	token, err := a.requireToken()
	if err != nil {
		return err
	}
	analytics, err := a.client.GetDashboardAnalytics(ctx, token)
	if err != nil {
		return err
	}
	renderAnalytics(a.stdout, analytics)
	return nil
}

func (a *app) cmdNotifications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ContinueOnError)
	page := fs.Int("page", 1, "Page to fetch")
	readID := fs.Int("read", 0, "Mark the given notification id read")
	readAll := fs.Bool("read-all", false, "Mark every notification on the page read")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.requireToken(); err != nil {
		return err
	}

	sync := a.newSynchronizer()
	if err := sync.LoadPage(ctx, *page); err != nil {
		return err
	}
	if *readID != 0 {
		if err := sync.Select(ctx, *readID); err != nil {
			return err
		}
	}
	if *readAll {
		if err := sync.MarkAllRead(ctx); err != nil {
			return err
		}
	}
	renderNotifications(a.stdout, sync.Snapshot())
	return nil
}

func (a *app) cmdTransactions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ContinueOnError)
	tab := fs.String("tab", "wallet", "Tab: wallet or customers")
	page := fs.Int("page", 1, "Page to fetch")
	status := fs.String("status", "all", "Status filter: all, successful, pending, failed")
	dateRange := fs.String("range", "last_12_months", "Date range preset")
	from := fs.String("from", "", "Custom range start (YYYY-MM-DD)")
	to := fs.String("to", "", "Custom range end (YYYY-MM-DD)")
	search := fs.String("search", "", "Free-text filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.requireToken(); err != nil {
		return err
	}

	ctrl := transactions.NewController(a.client, a.sess.Token, nil)
	if *from != "" || *to != "" {
		fromT, err := time.ParseInLocation("2006-01-02", *from, time.Local)
		if err != nil && *from != "" {
			return fmt.Errorf("invalid -from date: %w", err)
		}
		toT, err := time.ParseInLocation("2006-01-02", *to, time.Local)
		if err != nil && *to != "" {
			return fmt.Errorf("invalid -to date: %w", err)
		}
		if err := ctrl.SetCustomDateRange(ctx, fromT, toT); err != nil {
			return err
		}
	} else if err := ctrl.SetDateRangePreset(ctx, transactions.DateRangePreset(*dateRange)); err != nil {
		return err
	}
	if err := ctrl.SetStatusFilter(ctx, transactions.StatusFilter(*status)); err != nil {
		return err
	}
	if *search != "" {
		if err := ctrl.SetSearchQuery(ctx, *search); err != nil {
			return err
		}
	}
	if err := ctrl.SetActiveTab(ctx, transactions.Tab(*tab)); err != nil {
		return err
	}
	if *page > 1 {
		if err := ctrl.SetPage(ctx, *page); err != nil {
			return err
		}
	}

	renderTransactions(a.stdout, ctrl)
	return nil
}

func (a *app) cmdAPIKey(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apikey", flag.ContinueOnError)
	rotate := fs.Bool("rotate", false, "Generate a new key")
	sandbox := fs.Bool("sandbox", false, "Operate on the sandbox key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	token, err := a.requireToken()
	if err != nil {
		return err
	}

	var key string
	switch {
	case *sandbox && *rotate:
		key, err = a.client.GenerateSandboxAPIKey(ctx, token)
	case *sandbox:
		key, err = a.client.GetSandboxAPIKey(ctx, token)
	case *rotate:
		key, err = a.client.GenerateAPIKey(ctx, token)
	default:
		key, err = a.client.GetAPIKey(ctx, token)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, key)
	return nil
}

func (a *app) cmdChangePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	token, err := a.requireToken()
	if err != nil {
		return err
	}

	current, err := a.prompt("Current password: ")
	if err != nil {
		return err
	}
	next, err := a.prompt("New password: ")
	if err != nil {
		return err
	}
	confirm, err := a.prompt("Confirm new password: ")
	if err != nil {
		return err
	}

	msg, err := a.client.ChangePassword(ctx, token, api.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, msg)
	return nil
}

func (a *app) cmdResetRequest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-request", flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("missing required flags: email")
	}
	msg, err := a.client.RequestPasswordReset(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, msg)
	return nil
}

func (a *app) cmdReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	code := fs.String("code", "", "One-time reset code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *code == "" {
		return fmt.Errorf("missing required flags: code")
	}
	password, err := a.prompt("New password: ")
	if err != nil {
		return err
	}
	email, err := a.client.ResetPassword(ctx, api.ResetPasswordRequest{Token: *code, Password: password})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Password reset for %s\n", email)
	return nil
}

func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.stdout, label)
	value, err := readPassword(a.stdin)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(a.stdout)
	return value, nil
}

// readPassword hides input on a real terminal and falls back to a plain
// line read when stdin is piped (tests, scripts).
func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
	r := bufio.NewReader(stdin)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
