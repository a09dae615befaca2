// Package background runs best-effort collaborator calls off the request path.
package background

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrClosed is returned by Flush after Close.
var ErrClosed = errors.New("debouncer closed")

type job struct {
	key  string
	task func(ctx context.Context) error
}

// Debouncer coalesces tasks per key and runs them on a single worker.
//
// A task waits delay after its last reschedule before it is queued. The queue
// is bounded; when it is full the task is dropped and logged. Task errors are
// logged only.
type Debouncer struct {
	delay       time.Duration
	taskTimeout time.Duration
	queue       chan job

	mu      sync.Mutex
	pending map[string]func(ctx context.Context) error
	timers  map[string]*time.Timer
	closed  bool

	wg      sync.WaitGroup
	results metric.Int64Counter
}

// Options tune a Debouncer.
type Options struct {
	Delay       time.Duration
	QueueSize   int
	TaskTimeout time.Duration
}

// NewDebouncer starts the worker. Call Close to stop it.
func NewDebouncer(opts Options) *Debouncer {
	if opts.Delay <= 0 {
		opts.Delay = time.Second
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = 10 * time.Second
	}
	results, _ := otel.Meter("nest_configurator/background").Int64Counter("background.tasks",
		metric.WithDescription("background collaborator calls by result"))

	d := &Debouncer{
		delay:       opts.Delay,
		taskTimeout: opts.TaskTimeout,
		queue:       make(chan job, opts.QueueSize),
		pending:     make(map[string]func(ctx context.Context) error),
		timers:      make(map[string]*time.Timer),
		results:     results,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Schedule replaces any pending task for key and restarts its timer.
func (d *Debouncer) Schedule(key string, task func(ctx context.Context) error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Warn().Str("key", key).Msg("debouncer closed, dropping task")
		return
	}

	d.pending[key] = task
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.fire(key)
	})
}

// fire moves the pending task for key onto the queue.
func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	task, ok := d.pending[key]
	if !ok || d.closed {
		return
	}
	delete(d.pending, key)
	delete(d.timers, key)
	d.enqueueLocked(job{key: key, task: task})
}

// enqueueLocked never blocks, so it is safe under mu; mu also orders it
// before the queue is closed.
func (d *Debouncer) enqueueLocked(j job) {
	select {
	case d.queue <- j:
	default:
		d.record("dropped")
		log.Warn().Str("key", j.key).Msg("background queue full, dropping task")
	}
}

// Flush queues every pending task immediately.
func (d *Debouncer) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	for _, j := range d.drainLocked() {
		d.enqueueLocked(j)
	}
	return nil
}

func (d *Debouncer) drainLocked() []job {
	jobs := make([]job, 0, len(d.pending))
	for key, task := range d.pending {
		if t, ok := d.timers[key]; ok {
			t.Stop()
		}
		jobs = append(jobs, job{key: key, task: task})
	}
	d.pending = make(map[string]func(ctx context.Context) error)
	d.timers = make(map[string]*time.Timer)
	return jobs
}

// Close runs what is pending, waits for the worker and rejects later tasks.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, j := range d.drainLocked() {
		d.enqueueLocked(j)
	}
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Debouncer) run() {
	defer d.wg.Done()
	for j := range d.queue {
		d.execute(j)
	}
}

func (d *Debouncer) execute(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.taskTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			d.record("panic")
			log.Error().Interface("panic", r).Str("key", j.key).Msg("background task panicked")
		}
	}()

	if err := j.task(ctx); err != nil {
		d.record("failed")
		log.Warn().Err(err).Str("key", j.key).Msg("background task failed")
		return
	}
	d.record("ok")
}

func (d *Debouncer) record(result string) {
	if d.results == nil {
		return
	}
	d.results.Add(context.Background(), 1, metric.WithAttributes(attribute.String("result", result)))
}
