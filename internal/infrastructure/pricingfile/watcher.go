// Package pricingfile reloads the price table when its file changes.
package pricingfile

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"nest_configurator/internal/domain/pricing"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// TableReplacer receives reloaded tables.
type TableReplacer interface {
	ReplaceTable(t *pricing.Table)
}

// Watcher watches the directory holding the table file, since editors often
// replace files by rename, and reloads after writes settle.
type Watcher struct {
	path     string
	dir      string
	target   TableReplacer
	debounce time.Duration
	watcher  *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
	timer   *time.Timer
	done    chan struct{}

	// reloaded is signalled after every reload attempt. Tests use it.
	reloaded chan error
}

func New(path string, target TableReplacer, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(context.Background())
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Watcher{
		path:     filepath.Clean(abs),
		dir:      filepath.Dir(abs),
		target:   target,
		debounce: debounce,
		watcher:  fsw,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.cancel()
		if cerr := w.watcher.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", w.path).Msg("closing price table watcher")
		}
		return err
	}
	go w.loop()
	log.Info().Str("path", w.path).Msg("watching price table")
	return nil
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("price table watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.notify(w.Reload())
	})
}

// Reload reads the file and swaps the table in. A table that fails to load
// or validate leaves the current one in place.
func (w *Watcher) Reload() error {
	t, err := pricing.LoadTableFile(w.path)
	if err != nil {
		log.Error().Err(err).Str("path", w.path).Msg("price table reload failed, keeping current table")
		return err
	}
	w.target.ReplaceTable(t)
	log.Info().Str("path", w.path).Msg("price table reloaded")
	return nil
}

func (w *Watcher) notify(err error) {
	w.mu.Lock()
	ch := w.reloaded
	w.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}
