package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is one cached value with its insertion time and TTL.
type memoryEntry struct {
	value      []byte
	insertedAt time.Time
	ttl        time.Duration
}

// MemoryStore is an in-process Store used when Redis is not configured.
// The clock is injected so expiry is testable without sleeping.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore. If now is nil, time.Now is used.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

// Get returns the cached bytes for key while the entry is within its TTL.
// Expired entries are served as misses and dropped lazily.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.insertedAt) >= e.ttl {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. Non-positive TTLs are not stored.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, insertedAt: m.now(), ttl: ttl}
	m.mu.Unlock()
}

// Clear purges every entry regardless of TTL.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

// Len returns the number of entries currently held, including expired
// ones not yet dropped.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
