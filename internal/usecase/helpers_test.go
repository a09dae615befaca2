package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/domain/pricing"
	"nest_configurator/internal/domain/view"
	"nest_configurator/internal/infrastructure/clock"
	"nest_configurator/internal/usecase/interfaces"
)

var testStart = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// recordingSync keeps the last task per key until the test runs them.
type recordingSync struct {
	mu    sync.Mutex
	tasks map[string]func(ctx context.Context) error
}

var _ interfaces.ISyncScheduler = (*recordingSync)(nil)

func newRecordingSync() *recordingSync {
	return &recordingSync{tasks: make(map[string]func(ctx context.Context) error)}
}

func (r *recordingSync) Schedule(key string, task func(ctx context.Context) error) {
	r.mu.Lock()
	r.tasks[key] = task
	r.mu.Unlock()
}

func (r *recordingSync) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.tasks))
	for k := range r.tasks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *recordingSync) Run(ctx context.Context, key string) error {
	r.mu.Lock()
	task, ok := r.tasks[key]
	delete(r.tasks, key)
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return task(ctx)
}

func testDeps(clk *clock.Manual, sync *recordingSync) SessionDeps {
	return SessionDeps{
		Engine:      pricing.NewEngine(pricing.MustDefaultTable()),
		Resolver:    view.NewResolver(view.DefaultManifest()),
		Sync:        sync,
		Clock:       clk,
		IdleTimeout: 30 * time.Minute,
	}
}

func mustSelection(t *pricing.Table, cat entities.Category, id string) entities.Selection {
	sel, ok := t.BuildSelection(cat, id, nil, nil)
	if !ok {
		panic("unknown option " + string(cat) + "/" + id)
	}
	return sel
}
