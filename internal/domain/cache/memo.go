// Package cache memoizes deterministic lookups (prices, asset paths) under
// sanitized composite keys.
package cache

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

const keySeparator = "|"

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Sanitize strips everything but ASCII letters, digits, '_' and '-'.
func Sanitize(s string) string {
	return unsafeKeyChars.ReplaceAllString(s, "")
}

// Key builds a composite key from sanitized parts. The separator can never
// appear inside a part, so distinct tuples of sanitized values never collide.
func Key(parts ...string) string {
	clean := make([]string, len(parts))
	for i, p := range parts {
		clean[i] = Sanitize(p)
	}
	return strings.Join(clean, keySeparator)
}

// Memo is an unbounded map that is only ever cleared wholesale.
// Concurrent misses on the same key compute once.
type Memo[V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]V
	group   singleflight.Group

	hits   metric.Int64Counter
	misses metric.Int64Counter
	attrs  metric.MeasurementOption
}

// NewMemo creates an empty cache. name labels its metrics.
func NewMemo[V any](name string) *Memo[V] {
	meter := otel.Meter("nest_configurator/cache")
	hits, _ := meter.Int64Counter("cache.hits", metric.WithDescription("memoized lookups served from cache"))
	misses, _ := meter.Int64Counter("cache.misses", metric.WithDescription("memoized lookups computed"))
	return &Memo[V]{
		name:    name,
		entries: make(map[string]V),
		hits:    hits,
		misses:  misses,
		attrs:   metric.WithAttributes(attribute.String("cache", name)),
	}
}

// Get returns the cached value for key.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	return v, ok
}

// GetOrCompute returns the cached value for key, computing and storing it on a miss.
// A panic in compute propagates to the caller and nothing is stored.
func (m *Memo[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := m.Get(key); ok {
		m.record(m.hits)
		return v
	}
	m.record(m.misses)

	res, _, _ := m.group.Do(key, func() (interface{}, error) {
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v := compute()
		m.mu.Lock()
		m.entries[key] = v
		m.mu.Unlock()
		return v, nil
	})
	return res.(V)
}

// Len returns the number of cached entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Clear drops every entry.
func (m *Memo[V]) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]V)
	m.mu.Unlock()
}

func (m *Memo[V]) record(c metric.Int64Counter) {
	if c == nil {
		return
	}
	c.Add(context.Background(), 1, m.attrs)
}
