package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ReconciledResult is the authoritative outcome of an optimistic apply.
type ReconciledResult struct {
	Configuration entities.Configuration
	Price         int64
	Breakdown     entities.Breakdown
}

// Coordinator publishes an optimistic estimate for a selection and then
// reconciles it against the session. At most one optimistic state is
// pending; for every category only the latest selection may commit.
type Coordinator struct {
	session *ConfiguratorSession
	clock   interfaces.IClock

	mu          sync.Mutex
	pending     *entities.OptimisticState
	generations map[string]uint64
	subscribers []func(*entities.OptimisticState)

	outcomes metric.Int64Counter
}

// NewCoordinator creates the coordinator of one session.
func NewCoordinator(session *ConfiguratorSession, clock interfaces.IClock) *Coordinator {
	outcomes, _ := otel.Meter("nest_configurator/usecase").Int64Counter("configurator.reconciliations",
		metric.WithDescription("optimistic applies by outcome"))
	return &Coordinator{
		session:     session,
		clock:       clock,
		generations: make(map[string]uint64),
		outcomes:    outcomes,
	}
}

// Subscribe registers fn for every change of the pending state. fn receives
// nil when the pending state is cleared.
func (c *Coordinator) Subscribe(fn func(*entities.OptimisticState)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// Pending returns a copy of the pending optimistic state, or nil.
func (c *Coordinator) Pending() *entities.OptimisticState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return nil
	}
	p := *c.pending
	p.PendingSelection = p.PendingSelection.Clone()
	return &p
}

// Apply publishes the estimate currentPrice + sel.Price, validates sel and
// reconciles it asynchronously. A later Apply for the same category makes an
// earlier one return ErrSuperseded without committing. If ctx ends first the
// reconciliation still completes in the background.
func (c *Coordinator) Apply(ctx context.Context, sel entities.Selection) (ReconciledResult, error) {
	estimate := c.session.CurrentPrice(ctx) + sel.Price
	slot := generationSlot(sel)

	c.mu.Lock()
	c.generations[slot]++
	gen := c.generations[slot]
	state := &entities.OptimisticState{
		PendingSelection: sel.Clone(),
		EstimatedPrice:   estimate,
		IssuedAt:         c.clock.Now(),
	}
	c.pending = state
	subs := c.subscribersLocked()
	c.mu.Unlock()
	notify(subs, state)

	if err := sel.Validate(); err != nil {
		c.settle(ctx, state, "invalid")
		return ReconciledResult{}, err
	}

	type outcome struct {
		res ReconciledResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrReconciliation, r)}
			}
		}()
		cfg, err := c.session.applyIf(ctx, selectEvent(sel), func(cfg *entities.Configuration) {
			putSelection(cfg, sel)
		}, func() bool {
			return c.isLatest(slot, gen)
		})
		if err != nil {
			done <- outcome{err: err}
			return
		}
		done <- outcome{res: ReconciledResult{
			Configuration: cfg,
			Price:         cfg.TotalPrice,
			Breakdown:     c.session.deps.Engine.Breakdown(cfg),
		}}
	}()

	select {
	case o := <-done:
		switch {
		case o.err == nil:
			c.settle(ctx, state, "reconciled")
		case errors.Is(o.err, ErrSuperseded):
			c.settle(ctx, state, "superseded")
			log.Debug().Str("session_id", c.session.ID()).Str("category", string(sel.Category)).Msg("discarding superseded selection")
		default:
			c.settle(ctx, state, "failed")
		}
		return o.res, o.err
	case <-ctx.Done():
		c.settle(ctx, state, "canceled")
		return ReconciledResult{}, ctx.Err()
	}
}

func (c *Coordinator) isLatest(slot string, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[slot] == gen
}

// settle clears state unless a newer apply already replaced it.
func (c *Coordinator) settle(ctx context.Context, state *entities.OptimisticState, outcome string) {
	if c.outcomes != nil {
		c.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}

	c.mu.Lock()
	if c.pending != state {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	subs := c.subscribersLocked()
	c.mu.Unlock()
	notify(subs, nil)
}

func (c *Coordinator) subscribersLocked() []func(*entities.OptimisticState) {
	return append(([]func(*entities.OptimisticState))(nil), c.subscribers...)
}

func notify(subs []func(*entities.OptimisticState), state *entities.OptimisticState) {
	for _, fn := range subs {
		if state == nil {
			fn(nil)
			continue
		}
		cp := *state
		cp.PendingSelection = cp.PendingSelection.Clone()
		fn(&cp)
	}
}

// generationSlot is the ordering scope of a selection: its category, or the
// add-on itself.
func generationSlot(sel entities.Selection) string {
	if sel.Category == entities.CategoryAddOn {
		return string(sel.Category) + "/" + sel.Value
	}
	return string(sel.Category)
}
