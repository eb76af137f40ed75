package session

import (
	"sync"
	"time"
)

// DefaultIdleTimeout matches the dashboard's 60-minute auto-logout.
const DefaultIdleTimeout = 60 * time.Minute

// Monitor logs the user out after a period with no activity. A single timer
// is rearmed by Touch; when it elapses the logout callback fires exactly
// once. The monitor never arms without a live token, so a signed-out user
// can never be "logged out" again by a stray timer.
type Monitor struct {
	timeout time.Duration
	token   func() string
	logout  func()

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	fired   bool
}

// NewMonitor builds an inactivity monitor. A non-positive timeout falls
// back to DefaultIdleTimeout.
func NewMonitor(timeout time.Duration, token func() string, logout func()) *Monitor {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	return &Monitor{timeout: timeout, token: token, logout: logout}
}

// Start arms the timer. It is a no-op when no session exists.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running || m.token() == "" {
		return
	}
	m.running = true
	m.fired = false
	m.arm()
}

// Touch records user activity and rearms the timer. Activity after the
// timer has fired, or while stopped, is ignored.
func (m *Monitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running || m.fired {
		return
	}
	if m.token() == "" {
		m.disarm()
		m.running = false
		return
	}
	m.arm()
}

// Stop cancels the timer without logging out. Stopping an idle monitor is
// harmless.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disarm()
	m.running = false
}

// arm rearms the timer; callers must hold mu.
func (m *Monitor) arm() {
	m.disarm()
	m.timer = time.AfterFunc(m.timeout, m.expire)
}

func (m *Monitor) disarm() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Monitor) expire() {
	m.mu.Lock()
	if !m.running || m.fired {
		m.mu.Unlock()
		return
	}
	m.fired = true
	m.running = false
	m.timer = nil
	hasToken := m.token() != ""
	m.mu.Unlock()

	if hasToken {
		m.logout()
	}
}
