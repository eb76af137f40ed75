// Package session owns the persisted bearer credential and the inactivity
// monitor that revokes it. The store is the local equivalent of the
// dashboard's authToken/user persistence: a single row in a SQLite file.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"partner-dashboard/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// ErrNoSession is returned when no credential is stored or the stored one
// has expired.
var ErrNoSession = errors.New("no active session")

// Store persists the session token and the partner record it belongs to.
type Store struct {
	conn *sql.DB
}

// Open opens (and migrates) the session database at path. Use ":memory:"
// for tests.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	// Single-row table: the dashboard holds at most one session at a time.
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		partner TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Save replaces the stored session with the given token and partner record.
func (s *Store) Save(token string, partner *models.Partner, expiresIn int) error {
	if token == "" {
		return fmt.Errorf("refusing to save empty token")
	}
	raw, err := json.Marshal(partner)
	if err != nil {
		return fmt.Errorf("encode partner: %w", err)
	}
	// UTC so the comparison against CURRENT_TIMESTAMP is well defined.
	expiresAt := time.Now().UTC().Add(time.Duration(expiresIn) * time.Second)
	_, err = s.conn.Exec(
		`INSERT INTO session (id, token, partner, expires_at, saved_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   token = excluded.token,
		   partner = excluded.partner,
		   expires_at = excluded.expires_at,
		   saved_at = excluded.saved_at`,
		token, string(raw), expiresAt,
	)
	return err
}

// Token returns the stored bearer token, or ErrNoSession when none is
// stored or the stored one has expired.
func (s *Store) Token() (string, error) {
	row := s.conn.QueryRow(`SELECT token FROM session WHERE id = 1 AND expires_at > CURRENT_TIMESTAMP`)
	var token string
	if err := row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSession
		}
		return "", err
	}
	return token, nil
}

// Partner returns the cached partner record saved at login.
func (s *Store) Partner() (*models.Partner, error) {
	row := s.conn.QueryRow(`SELECT partner FROM session WHERE id = 1 AND expires_at > CURRENT_TIMESTAMP`)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var p models.Partner
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode partner: %w", err)
	}
	return &p, nil
}

// Clear removes any stored session. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	_, err := s.conn.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}
