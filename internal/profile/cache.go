// Package profile caches the authenticated partner's profile for the
// dashboard chrome (name, balance, unread badge). A failed refetch keeps
// the previous value so a transient blip never blanks already-loaded UI.
package profile

import (
	"context"
	"sync"

	"partner-dashboard/internal/api"
	"partner-dashboard/internal/models"
)

// Snapshot is a point-in-time view of the cache.
type Snapshot struct {
	Profile *models.Partner
	Loading bool
	Err     string
}

// Cache holds the profile for one authenticated dashboard session.
type Cache struct {
	client *api.Client
	token  func() string

	mu      sync.RWMutex
	profile *models.Partner
	loading bool
	err     string
}

// NewCache builds a profile cache bound to the given token source.
func NewCache(client *api.Client, token func() string) *Cache {
	return &Cache{client: client, token: token}
}

// Refetch pulls a fresh profile from the backend. With no token present it
// does nothing: a signed-out user is not an error. On failure the cached
// profile is retained and only the error string changes.
func (c *Cache) Refetch(ctx context.Context) error {
	token := c.token()
	if token == "" {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	p, err := c.client.GetProfile(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = err.Error()
		return err
	}
	c.profile = p
	c.err = ""
	return nil
}

// Snapshot returns the current cache state.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{Profile: c.profile, Loading: c.loading, Err: c.err}
}

// Clear drops the cached profile, for use on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = nil
	c.loading = false
	c.err = ""
}
