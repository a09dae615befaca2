package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"nest_configurator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LiveSession pairs a session with its optimistic update coordinator.
type LiveSession struct {
	Session     *ConfiguratorSession
	Coordinator *Coordinator
}

// SessionRegistry keeps the live sessions of this process.
//
// Close detection: a marker with a short TTL is set whenever a session is
// opened. Opening a session whose marker is gone but whose data was persisted
// means the browser was closed, so the session restarts Fresh.
type SessionRegistry struct {
	deps     SessionDeps
	markers  interfaces.ISessionMarkerStore
	interval time.Duration
	evictAt  time.Duration

	mu       sync.RWMutex
	sessions map[string]*LiveSession
}

// RegistryOptions tune the expiry loop.
type RegistryOptions struct {
	// CheckInterval is the period of RunExpiryLoop.
	CheckInterval time.Duration
	// EvictAfter drops Fresh sessions idle for that long from memory. Zero keeps them.
	EvictAfter time.Duration
}

func NewSessionRegistry(deps SessionDeps, markers interfaces.ISessionMarkerStore, opts RegistryOptions) *SessionRegistry {
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = time.Minute
	}
	return &SessionRegistry{
		deps:     deps,
		markers:  markers,
		interval: opts.CheckInterval,
		evictAt:  opts.EvictAfter,
		sessions: make(map[string]*LiveSession),
	}
}

// Create starts a new Fresh session.
func (r *SessionRegistry) Create(ctx context.Context) *LiveSession {
	s := NewConfiguratorSession(uuid.NewString(), r.deps)
	live := r.register(s)
	r.setMarker(ctx, s.ID())
	s.mu.Lock()
	s.persistLocked()
	s.mu.Unlock()
	log.Info().Str("session_id", s.ID()).Msg("session created")
	return live
}

// Open resumes a session on page load, applying close detection.
func (r *SessionRegistry) Open(ctx context.Context, id string) (*LiveSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}

	marked := r.hasMarker(ctx, id)

	live, ok := r.lookup(id)
	if !ok {
		restored, found := r.load(ctx, id)
		switch {
		case found:
			live = r.register(restored)
		case marked:
			// The marker outlived the data; start over under the same id.
			live = r.register(NewConfiguratorSession(id, r.deps))
		default:
			return nil, ErrSessionNotFound
		}
	}

	if !marked {
		live.Session.CloseDetected(ctx)
	}
	r.setMarker(ctx, id)
	return live, nil
}

// Close drops the marker so the next Open restarts the session Fresh.
func (r *SessionRegistry) Close(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	if _, ok := r.lookup(id); !ok {
		return ErrSessionNotFound
	}
	if r.markers == nil {
		return nil
	}
	if err := r.markers.Clear(ctx, id); err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("failed to clear session marker")
	}
	return nil
}

// Get returns a live session without close detection.
func (r *SessionRegistry) Get(id string) (*LiveSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	live, ok := r.lookup(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return live, nil
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepExpired runs the idle check of every session and reports how many were
// reset. Sweeping twice without activity in between resets nothing the second time.
func (r *SessionRegistry) SweepExpired(ctx context.Context) int {
	r.mu.RLock()
	all := make([]*LiveSession, 0, len(r.sessions))
	for _, live := range r.sessions {
		all = append(all, live)
	}
	r.mu.RUnlock()

	now := r.deps.Clock.Now()
	expired := 0
	var evict []string
	for _, live := range all {
		if live.Session.CheckExpiry(ctx) {
			expired++
		}
		if r.evictAt > 0 && r.evictable(live, now) {
			evict = append(evict, live.Session.ID())
		}
	}

	evicted := r.evict(evict, now)

	if expired > 0 || evicted > 0 {
		log.Info().Int("expired", expired).Int("evicted", evicted).Msg("session sweep")
	}
	return expired
}

// evict drops the given sessions, skipping any that interacted since they
// were picked.
func (r *SessionRegistry) evict(ids []string, now time.Time) int {
	if len(ids) == 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, id := range ids {
		if live, ok := r.sessions[id]; ok && r.evictable(live, now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *SessionRegistry) evictable(live *LiveSession, now time.Time) bool {
	st := live.Session.State()
	return !st.HasInteracted && st.IdleFor(now) >= r.evictAt
}

// RunExpiryLoop sweeps on every tick until ctx is done.
func (r *SessionRegistry) RunExpiryLoop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.SweepExpired(ctx)
		}
	}
}

func (r *SessionRegistry) register(s *ConfiguratorSession) *LiveSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	if live, ok := r.sessions[s.ID()]; ok {
		return live
	}
	live := &LiveSession{Session: s, Coordinator: NewCoordinator(s, r.deps.Clock)}
	r.sessions[s.ID()] = live
	return live
}

func (r *SessionRegistry) lookup(id string) (*LiveSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	live, ok := r.sessions[id]
	return live, ok
}

func (r *SessionRegistry) load(ctx context.Context, id string) (*ConfiguratorSession, bool) {
	if r.deps.Repo == nil {
		return nil, false
	}
	snap, found, err := r.deps.Repo.Load(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("failed to load configuration")
		return nil, false
	}
	if !found {
		return nil, false
	}
	snap.Configuration.SessionID = id
	return RestoreConfiguratorSession(snap, r.deps), true
}

func (r *SessionRegistry) hasMarker(ctx context.Context, id string) bool {
	if r.markers == nil {
		return true
	}
	ok, err := r.markers.Exists(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("failed to read session marker")
		return true
	}
	return ok
}

func (r *SessionRegistry) setMarker(ctx context.Context, id string) {
	if r.markers == nil {
		return
	}
	if err := r.markers.Set(ctx, id); err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("failed to set session marker")
	}
}
