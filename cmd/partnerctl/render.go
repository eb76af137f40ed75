package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"partner-dashboard/internal/models"
	"partner-dashboard/internal/notifications"
	"partner-dashboard/internal/transactions"
)

func renderProfile(w io.Writer, p *models.Partner) {
	if p == nil {
		fmt.Fprintln(w, "No profile loaded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", p.Phone)
	fmt.Fprintf(tw, "Role:\t%s\n", p.Role)
	fmt.Fprintf(tw, "Wallet balance:\t%s\n", models.FormatNaira(p.Wallet.Balance))
	fmt.Fprintf(tw, "Unread notifications:\t%d\n", p.NotificationCount)
	tw.Flush()
}

func renderAnalytics(w io.Writer, a *models.DashboardAnalytics) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Vended tokens:\t%.0f\t(%+.1f%%)\n", a.Highlights.VendedTokens.Value, a.Highlights.VendedTokens.Change)
	fmt.Fprintf(tw, "Revenue:\t%s\t(%+.1f%%)\n", models.FormatNaira(fmt.Sprintf("%f", a.Highlights.Revenue.Value)), a.Highlights.Revenue.Change)
	fmt.Fprintf(tw, "Successful transactions:\t%.0f\t(%+.1f%%)\n", a.Highlights.SuccessfulTransactions.Value, a.Highlights.SuccessfulTransactions.Change)
	fmt.Fprintf(tw, "Failed transactions:\t%.0f\t(%+.1f%%)\n", a.Highlights.FailedTransactions.Value, a.Highlights.FailedTransactions.Change)
	tw.Flush()

	if len(a.RecentTransactions) > 0 {
		fmt.Fprintln(w, "\nRecent transactions:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REFERENCE\tCUSTOMER\tAMOUNT\tSTATUS\tWHEN")
		for _, tx := range a.RecentTransactions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				tx.Reference, tx.Name,
				models.FormatNaira(fmt.Sprintf("%f", tx.Amount)),
				models.NormalizeStatus(tx.Status),
				models.TimeAgo(tx.CreatedAt, time.Now()))
		}
		tw.Flush()
	}
}

func renderNotifications(w io.Writer, snap notifications.Snapshot) {
	if len(snap.Items) == 0 {
		fmt.Fprintln(w, "No notifications.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t \tTITLE\tWHEN")
	now := time.Now()
	for _, n := range snap.Items {
		marker := "●"
		if n.Read {
			marker = " "
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", n.ID, marker, n.Title, models.TimeAgo(n.CreatedAt, now))
	}
	tw.Flush()
	fmt.Fprintf(w, "Page %d of %d (%d total)\n", snap.Pagination.CurrentPage, snap.Pagination.PageTotal, snap.Total)
	if sel := snap.Selected; sel != nil {
		fmt.Fprintf(w, "\n%s\n%s\n", sel.Title, sel.Message)
	}
	if snap.Err != "" {
		fmt.Fprintf(w, "Warning: %s\n", snap.Err)
	}
}

func renderTransactions(w io.Writer, ctrl *transactions.Controller) {
	now := time.Now()
	if ctrl.ActiveTab() == transactions.TabCustomers {
		snap := ctrl.Customers()
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REFERENCE\tCUSTOMER\tMETER\tAMOUNT\tKWH\tSTATUS\tWHEN")
		for _, tx := range snap.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				tx.TransactionReference, tx.Customer, tx.MeterNumber,
				models.FormatNaira(tx.Amount), tx.KWH,
				models.NormalizeStatus(tx.Status), models.TimeAgo(tx.Date, now))
		}
		tw.Flush()
		renderPageFooter(w, snap.Pagination, len(snap.Items), snap.Err)
		return
	}

	snap := ctrl.Wallet()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFERENCE\tTYPE\tDESCRIPTION\tAMOUNT\tBALANCE\tSTATUS\tWHEN")
	for _, tx := range snap.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Reference, tx.Type, tx.Description,
			models.FormatNaira(tx.Amount), models.FormatNaira(tx.CurrBalance),
			models.NormalizeStatus(tx.Status), models.TimeAgo(tx.CreatedAt, now))
	}
	tw.Flush()
	renderPageFooter(w, snap.Pagination, len(snap.Items), snap.Err)
}

func renderPageFooter(w io.Writer, p models.Pagination, shown int, errMsg string) {
	fmt.Fprintf(w, "Page %d of %d · %d shown after filters · %d/page\n", p.CurrentPage, p.PageTotal, shown, p.PageSize)
	if errMsg != "" {
		fmt.Fprintf(w, "Warning: %s\n", errMsg)
	}
}
