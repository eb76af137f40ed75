package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"partner-dashboard/internal/notifications"
	"partner-dashboard/internal/profile"
	"partner-dashboard/internal/session"
	"partner-dashboard/internal/transactions"
)

func (a *app) newSynchronizer() *notifications.Synchronizer {
	cache := profile.NewCache(a.client, a.sess.Token)
	return notifications.NewSynchronizer(a.client, a.sess.Token, cache.Refetch)
}

// cmdDash runs an interactive dashboard session. Every entered line counts
// as activity; the inactivity monitor signs the session out after the idle
// timeout, the same way the web dashboard does.
func (a *app) cmdDash(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dash", flag.ContinueOnError)
	idle := fs.Duration("idle", session.DefaultIdleTimeout, "Idle timeout before auto-logout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.requireToken(); err != nil {
		return err
	}

	cache := profile.NewCache(a.client, a.sess.Token)
	sync := notifications.NewSynchronizer(a.client, a.sess.Token, cache.Refetch)
	ctrl := transactions.NewController(a.client, a.sess.Token, nil)

	monitor := session.NewMonitor(*idle, a.sess.Token, a.sess.Logout)
	monitor.Start()
	defer monitor.Stop()

	if err := cache.Refetch(ctx); err != nil {
		fmt.Fprintf(a.stdout, "Warning: %v\n", err)
	}
	renderProfile(a.stdout, cache.Snapshot().Profile)
	fmt.Fprintln(a.stdout, `Commands: profile, notifications [page], read <id>, tx, tab <wallet|customers>, page <n>, status <s>, range <preset>, search <q>, quit`)

	scanner := bufio.NewScanner(a.stdin)
	for {
		if !a.sess.Authenticated() {
			return nil
		}
		fmt.Fprint(a.stdout, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		monitor.Touch()
		if !a.sess.Authenticated() {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := a.dashCommand(ctx, fields, cache, sync, ctrl); err != nil {
			fmt.Fprintf(a.stdout, "Error: %v\n", err)
		}
	}
}

func (a *app) dashCommand(ctx context.Context, fields []string, cache *profile.Cache, sync *notifications.Synchronizer, ctrl *transactions.Controller) error {
	arg := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	switch fields[0] {
	case "profile":
		if err := cache.Refetch(ctx); err != nil {
			return err
		}
		renderProfile(a.stdout, cache.Snapshot().Profile)
	case "notifications":
		page := 1
		if n, err := strconv.Atoi(arg(1)); err == nil && n > 0 {
			page = n
		}
		if err := sync.LoadPage(ctx, page); err != nil {
			return err
		}
		renderNotifications(a.stdout, sync.Snapshot())
	case "read":
		id, err := strconv.Atoi(arg(1))
		if err != nil {
			return fmt.Errorf("usage: read <id>")
		}
		if err := sync.Select(ctx, id); err != nil {
			return err
		}
		renderNotifications(a.stdout, sync.Snapshot())
	case "tx":
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		renderTransactions(a.stdout, ctrl)
	case "tab":
		if err := ctrl.SetActiveTab(ctx, transactions.Tab(arg(1))); err != nil {
			return err
		}
		renderTransactions(a.stdout, ctrl)
	case "page":
		n, err := strconv.Atoi(arg(1))
		if err != nil {
			return fmt.Errorf("usage: page <n>")
		}
		if err := ctrl.SetPage(ctx, n); err != nil {
			return err
		}
		renderTransactions(a.stdout, ctrl)
	case "status":
		if err := ctrl.SetStatusFilter(ctx, transactions.StatusFilter(arg(1))); err != nil {
			return err
		}
		renderTransactions(a.stdout, ctrl)
	case "range":
		if arg(1) == "custom" {
			from, err1 := time.ParseInLocation("2006-01-02", arg(2), time.Local)
			to, err2 := time.ParseInLocation("2006-01-02", arg(3), time.Local)
			if err1 != nil || err2 != nil {
				return fmt.Errorf("usage: range custom <from> <to> (YYYY-MM-DD)")
			}
			if err := ctrl.SetCustomDateRange(ctx, from, to); err != nil {
				return err
			}
		} else if err := ctrl.SetDateRangePreset(ctx, transactions.DateRangePreset(arg(1))); err != nil {
			return err
		}
		renderTransactions(a.stdout, ctrl)
	case "search":
		if err := ctrl.SetSearchQuery(ctx, strings.Join(fields[1:], " ")); err != nil {
			return err
		}
		renderTransactions(a.stdout, ctrl)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
