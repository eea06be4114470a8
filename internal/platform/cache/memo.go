package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/football-stats/internal/platform/resilience"
)

// Memo is a run-scoped map from key to resolved value. Entries never expire;
// failed loads are not stored.
type Memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	flight  resilience.SingleFlight[V]
	hits    int
	misses  int
}

func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	return v, ok
}

func (m *Memo[V]) Set(key string, value V) {
	if key == "" {
		return
	}

	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Stats returns hit and miss counts of GetOrLoad.
func (m *Memo[V]) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.hits, m.misses
}

func (m *Memo[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := m.Get(key); ok {
		m.count(true)
		return value, nil
	}
	m.count(false)

	value, err, _ := m.flight.Do(key, func() (V, error) {
		if cached, ok := m.Get(key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return zero, loadErr
		}
		m.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	return value, nil
}

func (m *Memo[V]) count(hit bool) {
	m.mu.Lock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
	m.mu.Unlock()
}
