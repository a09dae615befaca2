package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/domain/pricing"
	"nest_configurator/internal/domain/view"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrReconciliation   = errors.New("reconciliation failed")
	ErrSuperseded       = errors.New("selection superseded by a newer one")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// DefaultIdleTimeout is used when SessionDeps.IdleTimeout is not set.
const DefaultIdleTimeout = 30 * time.Minute

// SessionDeps are the collaborators shared by every session.
type SessionDeps struct {
	Engine      *pricing.Engine
	Resolver    *view.Resolver
	Assets      interfaces.IAssetStore
	Repo        interfaces.IConfigurationRepository
	Tracker     interfaces.ISelectionTracker
	Sync        interfaces.ISyncScheduler
	Clock       interfaces.IClock
	IdleTimeout time.Duration
}

func (d SessionDeps) idleTimeout() time.Duration {
	if d.IdleTimeout <= 0 {
		return DefaultIdleTimeout
	}
	return d.IdleTimeout
}

// PriceQuote is what the UI shows as the price of a session.
type PriceQuote struct {
	Price       int64
	Breakdown   entities.Breakdown
	MonthlyRate int64
}

// PreviewAsset is a resolved preview for one view.
type PreviewAsset struct {
	View    view.View
	AssetID string
	URL     string
}

// ConfiguratorSession owns one Configuration and gates its price behind the
// first interaction.
//
// Lifecycle: Fresh -> Active on the first mutation; Active -> Expired -> Fresh
// after the idle timeout. While Fresh the defaults are visible but the price
// is 0. All state is guarded by mu; callers only ever see clones.
type ConfiguratorSession struct {
	id   string
	deps SessionDeps

	mu    sync.Mutex
	cfg   entities.Configuration
	state entities.SessionState
}

// NewConfiguratorSession starts a Fresh session populated with the defaults.
func NewConfiguratorSession(id string, deps SessionDeps) *ConfiguratorSession {
	now := deps.Clock.Now()
	s := &ConfiguratorSession{id: id, deps: deps}
	s.cfg = s.defaultConfiguration(now)
	s.state = entities.NewSessionState(now)
	return s
}

// RestoreConfiguratorSession resumes a persisted snapshot. The price is
// recomputed rather than trusted.
func RestoreConfiguratorSession(snap entities.SessionSnapshot, deps SessionDeps) *ConfiguratorSession {
	s := &ConfiguratorSession{id: snap.Configuration.SessionID, deps: deps}
	s.cfg = snap.Configuration.Clone()
	if s.cfg.Selections == nil {
		s.cfg.Selections = make(map[entities.Category]entities.Selection)
	}
	if s.cfg.AddOns == nil {
		s.cfg.AddOns = make(map[string]entities.Selection)
	}
	s.state = snap.State
	if s.state.HasInteracted {
		s.state.Phase = entities.SessionPhaseActive
		s.cfg.TotalPrice = deps.Engine.TotalPrice(s.cfg)
	} else {
		s.state.Phase = entities.SessionPhaseFresh
		s.cfg.TotalPrice = 0
	}
	return s
}

// ID returns the session id.
func (s *ConfiguratorSession) ID() string {
	return s.id
}

func (s *ConfiguratorSession) defaultConfiguration(now time.Time) entities.Configuration {
	cfg := entities.NewConfiguration(s.id, now)
	for cat, sel := range s.deps.Engine.Table().DefaultSelections() {
		cfg.Selections[cat] = sel
	}
	return cfg
}

// UpdateSelection validates sel and applies it. Add-ons are switched on.
func (s *ConfiguratorSession) UpdateSelection(ctx context.Context, sel entities.Selection) (entities.Configuration, error) {
	if err := sel.Validate(); err != nil {
		return entities.Configuration{}, err
	}
	return s.applyIf(ctx, selectEvent(sel), func(cfg *entities.Configuration) {
		putSelection(cfg, sel)
	}, nil)
}

// RemoveSelection clears cat. Removing an absent category still counts as activity.
func (s *ConfiguratorSession) RemoveSelection(ctx context.Context, cat entities.Category) (entities.Configuration, error) {
	if !cat.Valid() {
		return entities.Configuration{}, &entities.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", cat)}
	}
	ev := entities.SelectionEvent{Action: entities.SelectionActionRemoved, Category: cat}
	return s.applyIf(ctx, ev, func(cfg *entities.Configuration) {
		if cat == entities.CategoryAddOn {
			cfg.AddOns = make(map[string]entities.Selection)
			return
		}
		delete(cfg.Selections, cat)
	}, nil)
}

// ToggleAddOn switches a one-off add-on on or off.
func (s *ConfiguratorSession) ToggleAddOn(ctx context.Context, addOn entities.Selection) (entities.Configuration, error) {
	if addOn.Category != entities.CategoryAddOn {
		return entities.Configuration{}, &entities.ValidationError{Field: "category", Reason: "only add-ons can be toggled"}
	}
	if err := addOn.Validate(); err != nil {
		return entities.Configuration{}, err
	}
	ev := entities.SelectionEvent{Action: entities.SelectionActionToggled, Category: addOn.Category, Value: addOn.Value, Price: addOn.Price}
	return s.applyIf(ctx, ev, func(cfg *entities.Configuration) {
		if _, on := cfg.AddOns[addOn.Value]; on {
			delete(cfg.AddOns, addOn.Value)
			return
		}
		cfg.AddOns[addOn.Value] = addOn.Clone()
	}, nil)
}

// applyIf runs mutate on a copy of the configuration, prices the copy and
// commits both only if pricing succeeds and accept (when given) still holds.
// Nothing is mutated on failure.
func (s *ConfiguratorSession) applyIf(ctx context.Context, ev entities.SelectionEvent, mutate func(*entities.Configuration), accept func() bool) (entities.Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.Clock.Now()
	s.expireIfIdleLocked(ctx, now)

	next := s.cfg.Clone()
	mutate(&next)

	total, err := s.reconcile(next)
	if err != nil {
		log.Error().Err(err).Str("session_id", s.id).Str("category", string(ev.Category)).Msg("failed to reconcile configuration")
		return entities.Configuration{}, err
	}
	if accept != nil && !accept() {
		return entities.Configuration{}, ErrSuperseded
	}

	if !s.state.HasInteracted {
		s.state.HasInteracted = true
		s.state.Phase = entities.SessionPhaseActive
		log.Info().Str("session_id", s.id).Msg("session became active")
	}
	s.state.LastActivityTime = now

	next.TotalPrice = total
	next.Timestamp = now
	s.cfg = next

	ev.SessionID = s.id
	ev.At = now
	s.trackLocked(ev)
	s.persistLocked()

	return s.cfg.Clone(), nil
}

// reconcile prices cfg, turning a panic into ErrReconciliation.
func (s *ConfiguratorSession) reconcile(cfg entities.Configuration) (total int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrReconciliation, r)
		}
	}()
	return s.deps.Engine.TotalPrice(cfg), nil
}

// Reset replaces the configuration with the defaults, re-enters Fresh and
// clears the price and path caches.
func (s *ConfiguratorSession) Reset(ctx context.Context) entities.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.Clock.Now()
	s.resetLocked(now)
	s.trackLocked(entities.SelectionEvent{SessionID: s.id, Action: entities.SelectionActionReset, At: now})
	s.persistLocked()
	return s.cfg.Clone()
}

func (s *ConfiguratorSession) resetLocked(now time.Time) {
	s.cfg = s.defaultConfiguration(now)
	s.state = entities.NewSessionState(now)
	s.deps.Engine.ClearCaches()
	s.deps.Resolver.ClearCache()
}

// CheckExpiry resets an Active session idle for longer than the timeout.
// It reports whether a reset happened; a second call without activity in
// between is a no-op.
func (s *ConfiguratorSession) CheckExpiry(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
}

func (s *ConfiguratorSession) expireIfIdleLocked(ctx context.Context, now time.Time) bool {
	if s.state.Phase != entities.SessionPhaseActive {
		return false
	}
	idle := s.state.IdleFor(now)
	if idle <= s.deps.idleTimeout() {
		return false
	}

	s.state.Phase = entities.SessionPhaseExpired
	log.Info().Str("session_id", s.id).Dur("idle", idle).Msg("session expired")
	s.resetLocked(now)
	s.persistLocked()
	return true
}

// CloseDetected resets the session after the browser was closed. It does not
// count as an interaction.
func (s *ConfiguratorSession) CloseDetected(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.HasInteracted {
		return
	}
	log.Info().Str("session_id", s.id).Msg("resuming closed session as fresh")
	s.resetLocked(s.deps.Clock.Now())
	s.persistLocked()
}

// CurrentPrice is 0 while the session is Fresh.
func (s *ConfiguratorSession) CurrentPrice(ctx context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
	if !s.state.HasInteracted {
		return 0
	}
	return s.cfg.TotalPrice
}

// PriceBreakdown is empty while the session is Fresh.
func (s *ConfiguratorSession) PriceBreakdown(ctx context.Context) entities.Breakdown {
	return s.Quote(ctx).Breakdown
}

// Quote returns price, breakdown and monthly rate in one consistent read.
func (s *ConfiguratorSession) Quote(ctx context.Context) PriceQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
	return s.quoteLocked()
}

// Priced returns the snapshot and its quote from a single read.
func (s *ConfiguratorSession) Priced(ctx context.Context) (entities.SessionSnapshot, PriceQuote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
	return s.snapshotLocked(), s.quoteLocked()
}

func (s *ConfiguratorSession) quoteLocked() PriceQuote {
	if !s.state.HasInteracted {
		return PriceQuote{}
	}
	b := s.deps.Engine.Breakdown(s.cfg)
	return PriceQuote{
		Price:       b.TotalPrice,
		Breakdown:   b,
		MonthlyRate: s.deps.Engine.MonthlyPayment(b.TotalPrice),
	}
}

// OptionDisplayPrice labels optionID relative to the current selection in cat,
// at the selected nest size (or the default one).
func (s *ConfiguratorSession) OptionDisplayPrice(ctx context.Context, cat entities.Category, optionID string) (entities.OptionPrice, error) {
	if !cat.Valid() {
		return entities.OptionPrice{}, &entities.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", cat)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())

	nest := s.cfg.Value(entities.CategoryNestSize)
	if nest == "" {
		nest = s.deps.Engine.Table().DefaultNestSize
	}
	return s.deps.Engine.OptionDisplayPrice(nest, s.cfg, cat, optionID), nil
}

// AvailableViews lists the preview views for the current configuration.
func (s *ConfiguratorSession) AvailableViews(ctx context.Context) []view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
	part2, part3 := s.activePartsLocked()
	return view.AvailableViews(s.cfg, part2, part3)
}

// activePartsLocked derives how far the user got. Defaults shown while Fresh
// do not unlock later parts.
func (s *ConfiguratorSession) activePartsLocked() (part2, part3 bool) {
	if !s.state.HasInteracted {
		return false, false
	}
	part2 = s.cfg.Has(entities.CategoryInteriorLining) || s.cfg.Has(entities.CategoryFlooring)
	part3 = s.cfg.Has(entities.CategoryExposurePackage) || s.cfg.Has(entities.CategorySolar) || s.cfg.Has(entities.CategoryWindows)
	return part2, part3
}

// ResolvePreviewAsset resolves the preview of v. If the asset store cannot
// serve the resolved asset, the view default is served instead.
func (s *ConfiguratorSession) ResolvePreviewAsset(ctx context.Context, v view.View) PreviewAsset {
	s.mu.Lock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
	cfg := s.cfg.Clone()
	s.mu.Unlock()

	assetID := s.deps.Resolver.Resolve(cfg, v)
	url, err := s.deps.Assets.URL(ctx, assetID)
	if err == nil {
		return PreviewAsset{View: v, AssetID: assetID, URL: url}
	}

	fallback := view.DefaultAssetID(v)
	log.Warn().Err(err).Str("session_id", s.id).Str("asset_id", assetID).Str("fallback", fallback).Msg("asset not servable, using default")
	url, err = s.deps.Assets.URL(ctx, fallback)
	if err != nil {
		log.Error().Err(err).Str("session_id", s.id).Str("asset_id", fallback).Msg("default asset not servable")
	}
	return PreviewAsset{View: v, AssetID: fallback, URL: url}
}

// Snapshot returns a copy of configuration and state. The price is 0 while Fresh.
func (s *ConfiguratorSession) Snapshot(ctx context.Context) entities.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfIdleLocked(ctx, s.deps.Clock.Now())
	return s.snapshotLocked()
}

func (s *ConfiguratorSession) snapshotLocked() entities.SessionSnapshot {
	snap := entities.SessionSnapshot{Configuration: s.cfg.Clone(), State: s.state}
	if !s.state.HasInteracted {
		snap.Configuration.TotalPrice = 0
	}
	return snap
}

// State returns the lifecycle state without running the expiry check.
func (s *ConfiguratorSession) State() entities.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ConfiguratorSession) persistLocked() {
	if s.deps.Repo == nil || s.deps.Sync == nil {
		return
	}
	snap := s.snapshotLocked()
	repo := s.deps.Repo
	s.deps.Sync.Schedule("configuration:"+s.id, func(ctx context.Context) error {
		return repo.Save(ctx, snap)
	})
}

func (s *ConfiguratorSession) trackLocked(ev entities.SelectionEvent) {
	if s.deps.Tracker == nil || s.deps.Sync == nil {
		return
	}
	if !s.state.HasInteracted {
		ev.Price = 0
	}
	tracker := s.deps.Tracker
	s.deps.Sync.Schedule("tracking:"+s.id+":"+string(ev.Action)+":"+string(ev.Category), func(ctx context.Context) error {
		return tracker.Track(ctx, ev)
	})
}

func selectEvent(sel entities.Selection) entities.SelectionEvent {
	return entities.SelectionEvent{
		Action:   entities.SelectionActionSelected,
		Category: sel.Category,
		Value:    sel.Value,
		Price:    sel.Price,
	}
}

func putSelection(cfg *entities.Configuration, sel entities.Selection) {
	if sel.Category == entities.CategoryAddOn {
		cfg.AddOns[sel.Value] = sel.Clone()
		return
	}
	cfg.Selections[sel.Category] = sel.Clone()
}
