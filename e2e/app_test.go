package e2e

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"partner-dashboard/internal/api"
	"partner-dashboard/internal/notifications"
	"partner-dashboard/internal/profile"
	"partner-dashboard/internal/session"
	"partner-dashboard/internal/transactions"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DashboardE2ESuite drives the whole client stack against a real stub
// backend process: login through the session manager, profile cache,
// notification feed, and the filtered transaction views.
type DashboardE2ESuite struct {
	suite.Suite
	ctx    context.Context
	client *api.Client
	store  *session.Store
	sess   *session.Manager
}

func (s *DashboardE2ESuite) SetupTest() {
	s.ctx = context.Background()
	s.client = api.NewClient(apiURL)
	store, err := session.Open(filepath.Join(s.T().TempDir(), "session.db"))
	s.Require().NoError(err)
	s.store = store
	s.sess = session.NewManager(store, s.client, nil)
}

func (s *DashboardE2ESuite) TearDownTest() {
	s.store.Close()
}

func (s *DashboardE2ESuite) login() {
	_, err := s.sess.Login(s.ctx, "partner@example.com", "vendtokens1")
	s.Require().NoError(err)
}

func (s *DashboardE2ESuite) TestLoginPersistsSession() {
	s.login()
	s.True(s.sess.Authenticated())

	// A fresh manager over the same store picks the session up from disk.
	again := session.NewManager(s.store, s.client, nil)
	s.True(again.Authenticated())
	partner := again.Partner()
	s.Require().NotNil(partner)
	s.Equal("partner@example.com", partner.Email)
}

func (s *DashboardE2ESuite) TestBadCredentialsLeaveNoSession() {
	_, err := s.sess.Login(s.ctx, "partner@example.com", "wrong")
	s.Require().Error(err)
	s.False(s.sess.Authenticated())
}

func (s *DashboardE2ESuite) TestProfileCacheTracksUnreadBadge() {
	s.login()

	cache := profile.NewCache(s.client, s.sess.Token)
	s.Require().NoError(cache.Refetch(s.ctx))
	snap := cache.Snapshot()
	s.Require().NotNil(snap.Profile)
	before := snap.Profile.NotificationCount
	s.Require().Greater(before, 0)

	// Opening an unread notification marks it read server-side and
	// refreshes the badge.
	sync := notifications.NewSynchronizer(s.client, s.sess.Token, cache.Refetch)
	s.Require().NoError(sync.LoadPage(s.ctx, 1))
	var unread int
	for _, n := range sync.Snapshot().Items {
		if !n.Read {
			unread = n.ID
			break
		}
	}
	s.Require().NotZero(unread)
	s.Require().NoError(sync.Select(s.ctx, unread))

	s.True(sync.Snapshot().Items[unread-1].Read)
	s.Equal(before-1, cache.Snapshot().Profile.NotificationCount)
}

func (s *DashboardE2ESuite) TestDeepLinkOpensNotification() {
	s.login()

	sync := notifications.NewSynchronizer(s.client, s.sess.Token, nil)
	sync.SetDeepLink(3)
	s.Require().NoError(sync.LoadPage(s.ctx, 1))

	snap := sync.Snapshot()
	s.Require().NotNil(snap.Selected)
	s.Equal(3, snap.Selected.ID)
	s.True(snap.Selected.Read)
}

func (s *DashboardE2ESuite) TestTransactionViews() {
	s.login()

	ctrl := transactions.NewController(s.client, s.sess.Token, nil)
	s.Require().NoError(ctrl.Refresh(s.ctx))

	wallet := ctrl.Wallet()
	s.Require().True(wallet.Loaded)
	s.Equal(25, wallet.Total)
	s.NotEmpty(wallet.Items)

	s.Require().NoError(ctrl.SetStatusFilter(s.ctx, transactions.StatusFailed))
	for _, tx := range ctrl.Wallet().Items {
		s.Equal("failed", tx.Status)
	}

	s.Require().NoError(ctrl.SetActiveTab(s.ctx, transactions.TabCustomers))
	customers := ctrl.Customers()
	s.Require().True(customers.Loaded)
	s.Equal(18, customers.Total)

	// Page moves keep the active filter.
	s.Require().NoError(ctrl.SetPage(s.ctx, 2))
	s.Equal(2, ctrl.Customers().Page)
	s.Equal(transactions.StatusFailed, ctrl.Filter().Status)
}

func (s *DashboardE2ESuite) TestIdleMonitorEndsSession() {
	s.login()

	monitor := session.NewMonitor(150*time.Millisecond, s.sess.Token, s.sess.Logout)
	monitor.Start()
	defer monitor.Stop()

	require.Eventually(s.T(), func() bool {
		return !s.sess.Authenticated()
	}, 2*time.Second, 25*time.Millisecond)

	// Requests with the cleared session fail fast, before the wire.
	sync := notifications.NewSynchronizer(s.client, s.sess.Token, nil)
	s.ErrorIs(sync.LoadPage(s.ctx, 1), api.ErrNotAuthenticated)
}

func TestDashboardE2ESuite(t *testing.T) {
	suite.Run(t, new(DashboardE2ESuite))
}
