package session

import (
	"context"
	"errors"
	"log"

	"partner-dashboard/internal/api"
	"partner-dashboard/internal/models"
)

// Manager ties the API client to the persisted store and drives the
// login/logout lifecycle. The onLogout hook is the hard-navigation
// equivalent: it runs after state is discarded so the caller can drop back
// to the sign-in surface.
type Manager struct {
	store    *Store
	client   *api.Client
	onLogout func()
}

// NewManager builds a session manager. onLogout may be nil.
func NewManager(store *Store, client *api.Client, onLogout func()) *Manager {
	return &Manager{store: store, client: client, onLogout: onLogout}
}

// Login authenticates against the backend and persists the returned token
// and partner record. A response missing its authorization is treated as a
// contract violation, never stored.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.Partner, error) {
	partner, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	auth := partner.Authorization
	if err := m.store.Save(auth.Token, partner, auth.ExpiresIn); err != nil {
		return nil, err
	}
	return partner, nil
}

// Logout clears the stored credential and fires the logout hook. It is
// idempotent: logging out twice is harmless.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		log.Printf("session: clear failed: %v", err)
	}
	if m.onLogout != nil {
		m.onLogout()
	}
}

// Token returns the current bearer token, or "" when signed out.
func (m *Manager) Token() string {
	token, err := m.store.Token()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			log.Printf("session: read token failed: %v", err)
		}
		return ""
	}
	return token
}

// Partner returns the partner record cached at login, or nil.
func (m *Manager) Partner() *models.Partner {
	p, err := m.store.Partner()
	if err != nil {
		return nil
	}
	return p
}

// Authenticated reports whether a live session exists.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}
