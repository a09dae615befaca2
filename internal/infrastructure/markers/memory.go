// Package markers stores the short-lived session markers used for close detection.
package markers

import (
	"context"
	"sync"
	"time"

	"nest_configurator/internal/usecase/interfaces"
)

// Memory keeps markers in process. Expired markers are dropped when read,
// and Set purges all of them at most once per ttl.
type Memory struct {
	ttl   time.Duration
	clock interfaces.IClock

	mu        sync.Mutex
	expires   map[string]time.Time
	nextPurge time.Time
}

var _ interfaces.ISessionMarkerStore = (*Memory)(nil)

func NewMemory(ttl time.Duration, clock interfaces.IClock) *Memory {
	return &Memory{ttl: ttl, clock: clock, expires: make(map[string]time.Time)}
}

func (m *Memory) Set(_ context.Context, sessionID string) error {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if !now.Before(m.nextPurge) {
		m.purgeLocked(now)
	}
	m.expires[sessionID] = now.Add(m.ttl)
	return nil
}

func (m *Memory) purgeLocked(now time.Time) {
	for id, exp := range m.expires {
		if !now.Before(exp) {
			delete(m.expires, id)
		}
	}
	m.nextPurge = now.Add(m.ttl)
}

func (m *Memory) Exists(_ context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.expires[sessionID]
	if !ok {
		return false, nil
	}
	if !m.clock.Now().Before(exp) {
		delete(m.expires, sessionID)
		return false, nil
	}
	return true, nil
}

func (m *Memory) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.expires, sessionID)
	m.mu.Unlock()
	return nil
}
