// Package notifications keeps the notification feed consistent with the
// backend. Read state is committed in two phases: the flip is staged
// locally, submitted, and only folded into the feed once the backend has
// acknowledged it. A failed acknowledgment leaves the item unread.
package notifications

import (
	"context"
	"fmt"
	"sync"

	"partner-dashboard/internal/api"
	"partner-dashboard/internal/models"
)

// Snapshot is a point-in-time view of the feed.
type Snapshot struct {
	Items      []models.Notification
	Total      int
	Pagination models.Pagination
	Selected   *models.Notification
	Loading    bool
	Err        string
}

// Synchronizer drives the notification feed for one dashboard session.
type Synchronizer struct {
	client         *api.Client
	token          func() string
	refetchProfile func(context.Context) error

	mu         sync.Mutex
	items      []models.Notification
	total      int
	pagination models.Pagination
	loaded     bool
	selected   *models.Notification
	deepLink   int
	loading    bool
	err        string
}

// NewSynchronizer builds a feed synchronizer. refetchProfile is invoked
// after a successful mark-as-read so the unread badge tracks the server's
// count; it may be nil.
func NewSynchronizer(client *api.Client, token func() string, refetchProfile func(context.Context) error) *Synchronizer {
	return &Synchronizer{client: client, token: token, refetchProfile: refetchProfile}
}

// SetDeepLink records a notification id to auto-select once a page that
// contains it loads. The target is one-shot: it is consumed by the next
// LoadPage whether or not the id is found, so revisiting the view does not
// re-trigger the selection.
func (s *Synchronizer) SetDeepLink(id int) {
	s.mu.Lock()
	s.deepLink = id
	s.mu.Unlock()
}

// LoadPage fetches one page of the feed, replacing the current one
// wholesale, then resolves any pending deep-link target.
func (s *Synchronizer) LoadPage(ctx context.Context, page int) error {
	token := s.token()
	if token == "" {
		return api.ErrNotAuthenticated
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	result, err := s.client.GetNotifications(ctx, token, page)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	s.items = result.Notifications
	s.total = result.Total
	s.pagination = result.Pagination
	s.loaded = true
	s.selected = nil
	s.err = ""
	target := s.deepLink
	s.deepLink = 0
	s.mu.Unlock()

	if target != 0 {
		// Absent ids select nothing: the target may live on another page,
		// and defaulting to the first item would show the wrong one.
		if _, ok := s.find(target); ok {
			return s.Select(ctx, target)
		}
	}
	return nil
}

func (s *Synchronizer) find(id int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Select marks the notification current. Selecting an unread item issues a
// mark-as-read; local read state flips only on acknowledged success, and a
// failure surfaces the error without blocking the selection itself.
func (s *Synchronizer) Select(ctx context.Context, id int) error {
	idx, ok := s.find(id)
	if !ok {
		return fmt.Errorf("notification %d is not on the loaded page", id)
	}

	s.mu.Lock()
	pending := s.items[idx]
	s.selected = &pending
	wasRead := pending.Read
	s.mu.Unlock()

	if wasRead {
		return nil
	}

	token := s.token()
	if token == "" {
		return api.ErrNotAuthenticated
	}
	if err := s.client.MarkNotificationsRead(ctx, token, []int{id}); err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}

	// Acknowledged: fold the staged flip into the feed.
	pending.Read = true
	s.mu.Lock()
	s.items[idx] = pending
	s.selected = &pending
	s.err = ""
	s.mu.Unlock()

	if s.refetchProfile != nil {
		if err := s.refetchProfile(ctx); err != nil {
			// The read state is already settled server-side; a stale badge
			// heals on the next profile fetch.
			return nil
		}
	}
	return nil
}

// MarkAllRead marks every unread notification on the loaded page.
func (s *Synchronizer) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	var ids []int
	for _, n := range s.items {
		if !n.Read {
			ids = append(ids, n.ID)
		}
	}
	s.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}

	token := s.token()
	if token == "" {
		return api.ErrNotAuthenticated
	}
	if err := s.client.MarkNotificationsRead(ctx, token, ids); err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		s.items[i].Read = true
	}
	s.err = ""
	s.mu.Unlock()

	if s.refetchProfile != nil {
		_ = s.refetchProfile(ctx)
	}
	return nil
}

// Snapshot returns the current feed state.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Notification, len(s.items))
	copy(items, s.items)
	var selected *models.Notification
	if s.selected != nil {
		sel := *s.selected
		selected = &sel
	}
	return Snapshot{
		Items:      items,
		Total:      s.total,
		Pagination: s.pagination,
		Selected:   selected,
		Loading:    s.loading,
		Err:        s.err,
	}
}
