// Package transactions holds the filter and pagination state behind the
// transactions view. The backend pages server-side; status, search, and
// date filters are applied client-side to the loaded page only, a known
// limitation of the partner API.
package transactions

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"partner-dashboard/internal/api"
	"partner-dashboard/internal/models"
)

// Tab selects which transaction resource the view shows.
type Tab string

const (
	TabWallet    Tab = "wallet"
	TabCustomers Tab = "customers"
)

// tabState is the per-tab fetch state. gen guards against a slow stale
// response landing after a newer request: only the response matching the
// latest generation is applied.
type tabState[T any] struct {
	page    int
	result  *T
	loading bool
	err     string
	gen     uint64
}

// FilterState is the shared filter portion of the controller.
type FilterState struct {
	Status StatusFilter
	Preset DateRangePreset
	Custom DateRange
	Search string
}

// Controller coordinates the wallet and customer transaction tabs. Each tab
// keeps its own page, result, and error state, so switching tabs never
// clears the other tab's loaded data.
type Controller struct {
	client *api.Client
	token  func() string
	now    func() time.Time

	mu        sync.Mutex
	tab       Tab
	filter    FilterState
	wallet    tabState[api.WalletTransactionsPage]
	customers tabState[api.ConsumerTransactionsPage]
}

// NewController builds a controller with the dashboard's defaults: wallet
// tab, all statuses, last 12 months. now may be nil for wall-clock time.
func NewController(client *api.Client, token func() string, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		client:    client,
		token:     token,
		now:       now,
		tab:       TabWallet,
		filter:    FilterState{Status: StatusAll, Preset: PresetLast12Months},
		wallet:    tabState[api.WalletTransactionsPage]{page: 1},
		customers: tabState[api.ConsumerTransactionsPage]{page: 1},
	}
}

// ActiveTab returns the tab currently shown.
func (c *Controller) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// Filter returns the current shared filter state.
func (c *Controller) Filter() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetActiveTab switches tabs, resets the incoming tab to page 1, and
// fetches it. The outgoing tab's state is left untouched.
func (c *Controller) SetActiveTab(ctx context.Context, tab Tab) error {
	if tab != TabWallet && tab != TabCustomers {
		return fmt.Errorf("unknown tab %q", tab)
	}
	c.mu.Lock()
	c.tab = tab
	c.resetActivePageLocked()
	c.mu.Unlock()
	return c.fetchActive(ctx)
}

// SetStatusFilter changes the status filter, resets the active tab to page
// 1, and refetches.
func (c *Controller) SetStatusFilter(ctx context.Context, f StatusFilter) error {
	if !f.valid() {
		return fmt.Errorf("unknown status filter %q", f)
	}
	c.mu.Lock()
	c.filter.Status = f
	c.resetActivePageLocked()
	c.mu.Unlock()
	return c.fetchActive(ctx)
}

// SetDateRangePreset selects a relative window. The custom preset is only
// reachable through SetCustomDateRange, which carries the explicit range.
func (c *Controller) SetDateRangePreset(ctx context.Context, p DateRangePreset) error {
	if _, ok := p.Window(c.now()); !ok {
		return fmt.Errorf("preset %q has no relative window", p)
	}
	c.mu.Lock()
	c.filter.Preset = p
	c.filter.Custom = DateRange{}
	c.resetActivePageLocked()
	c.mu.Unlock()
	return c.fetchActive(ctx)
}

// SetCustomDateRange applies an explicit range. An invalid range (missing
// end, or start after end) is rejected with no state change and no fetch.
func (c *Controller) SetCustomDateRange(ctx context.Context, from, to time.Time) error {
	r, err := NewDateRange(from, to)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.filter.Preset = PresetCustom
	c.filter.Custom = r
	c.resetActivePageLocked()
	c.mu.Unlock()
	return c.fetchActive(ctx)
}

// SetSearchQuery changes the free-text filter, resets the active tab to
// page 1, and refetches.
func (c *Controller) SetSearchQuery(ctx context.Context, q string) error {
	c.mu.Lock()
	c.filter.Search = strings.TrimSpace(q)
	c.resetActivePageLocked()
	c.mu.Unlock()
	return c.fetchActive(ctx)
}

// SetPage moves the active tab to the given page. Filters are preserved.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	switch c.tab {
	case TabWallet:
		c.wallet.page = page
	case TabCustomers:
		c.customers.page = page
	}
	c.mu.Unlock()
	return c.fetchActive(ctx)
}

// Refresh refetches the active tab at its current page.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.fetchActive(ctx)
}

func (c *Controller) resetActivePageLocked() {
	switch c.tab {
	case TabWallet:
		c.wallet.page = 1
	case TabCustomers:
		c.customers.page = 1
	}
}

func (c *Controller) fetchActive(ctx context.Context) error {
	c.mu.Lock()
	tab := c.tab
	c.mu.Unlock()
	if tab == TabCustomers {
		return runFetch(c, &c.customers, func(page int) (*api.ConsumerTransactionsPage, error) {
			return c.client.GetConsumerTransactions(ctx, c.token(), page)
		})
	}
	return runFetch(c, &c.wallet, func(page int) (*api.WalletTransactionsPage, error) {
		return c.client.GetWalletTransactions(ctx, c.token(), page)
	})
}

func runFetch[T any](c *Controller, st *tabState[T], fetch func(page int) (*T, error)) error {
	if c.token() == "" {
		return api.ErrNotAuthenticated
	}

	c.mu.Lock()
	st.gen++
	gen := st.gen
	page := st.page
	st.loading = true
	c.mu.Unlock()

	result, err := fetch(page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != st.gen {
		// A newer request superseded this one while it was in flight.
		return nil
	}
	st.loading = false
	if err != nil {
		st.err = err.Error()
		return err
	}
	st.result = result
	st.err = ""
	return nil
}

// window resolves the effective date window; callers must hold mu.
func (c *Controller) windowLocked() DateRange {
	if c.filter.Preset == PresetCustom {
		return c.filter.Custom
	}
	r, _ := c.filter.Preset.Window(c.now())
	return r
}

func (c *Controller) inWindowLocked(wire string) bool {
	t, err := models.ParseWireTime(wire)
	if err != nil {
		return false
	}
	return c.windowLocked().Contains(t.Local())
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// WalletSnapshot is the wallet tab's state with filters applied to the
// loaded page.
type WalletSnapshot struct {
	Items      []models.WalletTransaction
	Total      int
	Pagination models.Pagination
	Page       int
	Loaded     bool
	Loading    bool
	Err        string
}

// Wallet returns the wallet tab with status, search, and date filters
// applied to the currently loaded page.
func (c *Controller) Wallet() WalletSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := WalletSnapshot{Page: c.wallet.page, Loading: c.wallet.loading, Err: c.wallet.err}
	if c.wallet.result == nil {
		return snap
	}
	snap.Loaded = true
	snap.Total = c.wallet.result.Total
	snap.Pagination = c.wallet.result.Pagination
	for _, tx := range c.wallet.result.Transactions {
		if !c.filter.Status.matches(tx.Status) {
			continue
		}
		if !c.inWindowLocked(tx.CreatedAt) {
			continue
		}
		if q := c.filter.Search; q != "" &&
			!containsFold(tx.Description, q) &&
			!containsFold(tx.Reference, q) &&
			!containsFold(tx.Email, q) {
			continue
		}
		snap.Items = append(snap.Items, tx)
	}
	return snap
}

// CustomerSnapshot is the customers tab's state with filters applied to the
// loaded page.
type CustomerSnapshot struct {
	Items      []models.ConsumerTransaction
	Total      int
	Pagination models.Pagination
	Page       int
	Loaded     bool
	Loading    bool
	Err        string
}

// Customers returns the customers tab with status, search, and date filters
// applied to the currently loaded page.
func (c *Controller) Customers() CustomerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := CustomerSnapshot{Page: c.customers.page, Loading: c.customers.loading, Err: c.customers.err}
	if c.customers.result == nil {
		return snap
	}
	snap.Loaded = true
	snap.Total = c.customers.result.Total
	snap.Pagination = c.customers.result.Pagination
	for _, tx := range c.customers.result.Transactions {
		if !c.filter.Status.matches(tx.Status) {
			continue
		}
		if !c.inWindowLocked(tx.Date) {
			continue
		}
		if q := c.filter.Search; q != "" &&
			!containsFold(tx.Customer, q) &&
			!containsFold(tx.TransactionReference, q) &&
			!containsFold(tx.MeterNumber, q) &&
			!containsFold(tx.AccountNumber, q) &&
			!containsFold(tx.Token, q) {
			continue
		}
		snap.Items = append(snap.Items, tx)
	}
	return snap
}
