package corpus

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Memory is an in-memory identifier corpus. It satisfies resolver.Corpus and
// is safe for concurrent readers and writers, so a watcher can mutate it
// while resolutions are in flight.
type Memory struct {
	mu     sync.RWMutex
	ids    map[string]struct{}
	sorted []string // rebuilt lazily after mutation
	dirty  bool
}

// NewMemory creates a corpus seeded with the given identifiers.
func NewMemory(ids ...string) *Memory {
	m := &Memory{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	m.dirty = true
	return m
}

// Add inserts an identifier. Adding an existing identifier is a no-op.
func (m *Memory) Add(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ids[id]; ok {
		return
	}
	m.ids[id] = struct{}{}
	m.dirty = true
}

// Remove deletes an identifier if present.
func (m *Memory) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ids[id]; !ok {
		return
	}
	delete(m.ids, id)
	m.dirty = true
}

// Len returns the number of identifiers in the corpus.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}

// List returns every identifier in lexicographic order. The returned slice
// is shared and must not be mutated by callers.
func (m *Memory) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rebuildLocked()
	return m.sorted, nil
}

// Contains reports whether the identifier exists verbatim.
func (m *Memory) Contains(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.ids[id]
	return ok, nil
}

// Fingerprint returns an xxhash over the sorted identifier set. Two corpora
// with the same contents produce the same fingerprint, so callers can use it
// for cheap change detection across snapshots.
func (m *Memory) Fingerprint() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rebuildLocked()
	return xxhash.Sum64String(strings.Join(m.sorted, "\n"))
}

func (m *Memory) rebuildLocked() {
	if !m.dirty {
		return
	}
	m.sorted = make([]string, 0, len(m.ids))
	for id := range m.ids {
		m.sorted = append(m.sorted, id)
	}
	sort.Strings(m.sorted)
	m.dirty = false
}
