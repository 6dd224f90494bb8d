package cache

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// Store is a best-effort memo table with a fixed TTL per store. It is an
// optimization, not a source of truth: concurrent callers may both miss and
// both fetch, which is acceptable.
type Store interface {
	// Get copies the cached value into dest (a non-nil pointer) and reports
	// whether a live entry was found. Expired entries are evicted lazily.
	Get(ctx context.Context, key string, dest interface{}) bool
	// Set stores value under key, restarting its TTL window.
	Set(ctx context.Context, key string, value interface{})
}

type memoryEntry struct {
	value      interface{}
	insertedAt time.Time
}

// MemoryStore is the default process-local store. Eviction happens on the
// next lookup past the TTL; there is no background sweeper.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store whose entries live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest interface{}) bool {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if s.now().Sub(entry.insertedAt) > s.ttl {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, still := s.entries[key]; still && s.now().Sub(current.insertedAt) > s.ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return false
	}

	return assign(dest, entry.value)
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}) {
	s.mu.Lock()
	s.entries[key] = memoryEntry{value: value, insertedAt: s.now()}
	s.mu.Unlock()
}

// Len reports the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// assign copies value into the pointer dest when types are compatible.
func assign(dest, value interface{}) bool {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return false
	}
	vv := reflect.ValueOf(value)
	if !vv.IsValid() || !vv.Type().AssignableTo(dv.Elem().Type()) {
		return false
	}
	dv.Elem().Set(vv)
	return true
}
