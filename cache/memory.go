package cache

import (
	"context"
	"sync"
)

// Memory is an in-process Cache with no eviction and no TTL. Entries live
// for the lifetime of the process: identical (kind, key) lookups always
// return the previously stored value regardless of staleness.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get retrieves a cached value.
func (m *Memory) Get(_ context.Context, kind, key string) (data []byte, found bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, found = m.entries[Key(kind, key)]
	return data, found
}

// Set stores a value, replacing any existing entry wholesale.
func (m *Memory) Set(_ context.Context, kind, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[Key(kind, key)] = data
	return nil
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Ensure Memory implements Cache.
var _ Cache = (*Memory)(nil)
