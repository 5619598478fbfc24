package store

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/stylekit/internal/ports"
)

// MemoryStore keeps state for the lifetime of the process only.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry), now: time.Now}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if entry.expired(s.now()) {
		delete(s.entries, key)
		return "", false
	}
	return entry.Value, true
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Value: value}
	if ttl > 0 {
		expires := s.now().Add(ttl)
		entry.ExpiresAt = &expires
	}
	s.entries[key] = entry
	return nil
}

var _ ports.Store = (*MemoryStore)(nil)
