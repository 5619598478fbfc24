package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/stylekit/internal/ports"
)

const fileVersion = "1.0"

// Entry is one persisted value with an optional expiry.
type Entry struct {
	Value     string     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (e Entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && e.ExpiresAt.Before(now)
}

// File is the JSON document written to disk.
type File struct {
	Version string           `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// FileStore persists key/value state such as the active theme in a JSON file.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	entries map[string]Entry
	now     func() time.Time
}

// NewFileStore creates a FileStore and loads any existing state from path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: fileVersion,
		entries: make(map[string]Entry),
		now:     time.Now,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the state file from disk, replacing in-memory entries.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	s.version = file.Version
	s.entries = file.Entries
	if s.entries == nil {
		s.entries = make(map[string]Entry)
	}

	return nil
}

// Get returns the value stored under key. Expired entries are dropped.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	if entry.expired(s.now()) {
		_ = s.Remove(key)
		return "", false
	}
	return entry.Value, true
}

// Set stores value under key and writes the file before returning. A zero
// ttl never expires.
func (s *FileStore) Set(key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Value: value}
	if ttl > 0 {
		expires := s.now().Add(ttl)
		entry.ExpiresAt = &expires
	}

	previous, existed := s.entries[key]
	s.entries[key] = entry
	if err := s.saveLocked(); err != nil {
		if existed {
			s.entries[key] = previous
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}

// Remove deletes key and persists the change.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.saveLocked()
}

// Clear deletes every entry and persists the empty state.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
	return s.saveLocked()
}

// saveLocked writes the state atomically. Callers hold s.mu.
func (s *FileStore) saveLocked() error {
	file := File{
		Version: s.version,
		Entries: s.entries,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

var _ ports.Store = (*FileStore)(nil)
