package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/infrastructure/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator() (*Coordinator, *ConfiguratorSession) {
	clk := clock.NewManual(testStart)
	session := NewConfiguratorSession("s1", testDeps(clk, newRecordingSync()))
	return NewCoordinator(session, clk), session
}

func TestCoordinator_ApplyReconciles(t *testing.T) {
	c, session := newTestCoordinator()
	sel := mustSelection(session.deps.Engine.Table(), entities.CategoryEnvelope, "holzlattung")

	var mu sync.Mutex
	var seen []*entities.OptimisticState
	c.Subscribe(func(st *entities.OptimisticState) {
		mu.Lock()
		seen = append(seen, st)
		mu.Unlock()
	})

	res, err := c.Apply(context.Background(), sel)
	require.NoError(t, err)

	assert.Equal(t, int64(165100), res.Price)
	assert.Equal(t, res.Price, res.Breakdown.TotalPrice)
	assert.Equal(t, "holzlattung", res.Configuration.Value(entities.CategoryEnvelope))
	assert.Nil(t, c.Pending())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	assert.Equal(t, int64(9600), seen[0].EstimatedPrice, "a fresh session estimates from zero")
	assert.Equal(t, "holzlattung", seen[0].PendingSelection.Value)
	assert.Nil(t, seen[1])
}

func TestCoordinator_EstimateStartsFromCurrentPrice(t *testing.T) {
	c, session := newTestCoordinator()
	table := session.deps.Engine.Table()
	_, err := c.Apply(context.Background(), mustSelection(table, entities.CategoryEnvelope, "holzlattung"))
	require.NoError(t, err)

	var estimate int64
	c.Subscribe(func(st *entities.OptimisticState) {
		if st != nil {
			estimate = st.EstimatedPrice
		}
	})
	_, err = c.Apply(context.Background(), mustSelection(table, entities.CategoryPlanningPackage, "pro"))
	require.NoError(t, err)

	assert.Equal(t, int64(165100+12700), estimate)
}

func TestCoordinator_InvalidSelectionClearsPending(t *testing.T) {
	c, session := newTestCoordinator()
	sel := mustSelection(session.deps.Engine.Table(), entities.CategoryWindows, "fenster_holz_alu")

	_, err := c.Apply(context.Background(), sel)

	assert.ErrorIs(t, err, entities.ErrInvalidSelection)
	assert.Nil(t, c.Pending())
	assert.Equal(t, entities.SessionPhaseFresh, session.State().Phase)
}

func TestCoordinator_LatestSelectionWins(t *testing.T) {
	c, session := newTestCoordinator()
	table := session.deps.Engine.Table()
	first := mustSelection(table, entities.CategoryEnvelope, "holzlattung")
	second := mustSelection(table, entities.CategoryEnvelope, "fassadenplatten_schwarz")

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.Subscribe(func(st *entities.OptimisticState) {
		if st != nil && st.PendingSelection.Value == first.Value {
			once.Do(func() { close(entered) })
			<-release
		}
	})

	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Apply(context.Background(), first)
		firstErr <- err
	}()
	<-entered

	res, err := c.Apply(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, "fassadenplatten_schwarz", res.Configuration.Value(entities.CategoryEnvelope))

	close(release)
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("superseded apply did not return")
	}

	assert.Equal(t, "fassadenplatten_schwarz", session.Snapshot(context.Background()).Configuration.Value(entities.CategoryEnvelope))
	assert.Nil(t, c.Pending())
}

func TestCoordinator_CategoriesAreOrderedIndependently(t *testing.T) {
	c, session := newTestCoordinator()
	table := session.deps.Engine.Table()

	_, err := c.Apply(context.Background(), mustSelection(table, entities.CategoryEnvelope, "holzlattung"))
	require.NoError(t, err)
	_, err = c.Apply(context.Background(), mustSelection(table, entities.CategoryFlooring, "granit"))
	require.NoError(t, err)

	cfg := session.Snapshot(context.Background()).Configuration
	assert.Equal(t, "holzlattung", cfg.Value(entities.CategoryEnvelope))
	assert.Equal(t, "granit", cfg.Value(entities.CategoryFlooring))
}

func TestCoordinator_CanceledContextStillCommits(t *testing.T) {
	c, session := newTestCoordinator()
	sel := mustSelection(session.deps.Engine.Table(), entities.CategoryEnvelope, "holzlattung")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Apply(ctx, sel)
	if err != nil {
		assert.True(t, errors.Is(err, context.Canceled))
	}

	assert.Eventually(t, func() bool {
		return session.Snapshot(context.Background()).Configuration.Value(entities.CategoryEnvelope) == "holzlattung"
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, c.Pending())
}

func TestGenerationSlot(t *testing.T) {
	assert.Equal(t, "flooring", generationSlot(entities.Selection{Category: entities.CategoryFlooring, Value: "granit"}))
	assert.Equal(t, "add-on/fundament", generationSlot(entities.Selection{Category: entities.CategoryAddOn, Value: "fundament"}))
}
