// Package hashstore provides the persistent extraction cache: a durable
// mapping from file path to last-seen content hash and extraction result.
// The store is a single JSON file under the cache directory; deleting it is
// equivalent to a forced full recompute on the next run.
package hashstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/HybridTalentComputing/i18nscan/internal/logging"
	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

const (
	// StoreFile is the name of the persisted cache inside the cache dir.
	StoreFile = "extraction_cache.json"

	storeVersion = "1"
)

// Entry is one cached extraction, keyed by path in the store.
// It is reusable only while the file's current content hash equals Hash.
type Entry struct {
	Hash         string                 `json:"hash"`
	LastComputed time.Time              `json:"timestamp"`
	Result       model.ExtractionResult `json:"result"`
}

// fileFormat is the on-disk layout of the store.
type fileFormat struct {
	Version string           `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Store is a concurrency-safe, file-backed extraction cache. A coarse
// RWMutex guards the entry map; cache I/O, not lock contention, is the
// bottleneck. Mutations live in memory until Save.
type Store struct {
	fs      afero.Fs
	dir     string
	nowFunc func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry
}

// Option configures a Store.
type Option func(*Store)

// WithNowFunc sets a custom time source, for deterministic tests.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Store) {
		s.nowFunc = now
	}
}

// Open loads the store under dir, creating the directory if needed.
// A missing, malformed, or version-mismatched store file is treated as an
// empty cache, never as a failure: the next Save rewrites a valid store.
func Open(fs afero.Fs, dir string, options ...Option) (*Store, error) {
	s := &Store{
		fs:      fs,
		dir:     dir,
		nowFunc: time.Now,
		entries: make(map[string]Entry),
	}
	for _, option := range options {
		option(s)
	}

	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}

	data, err := afero.ReadFile(fs, s.path())
	if err != nil {
		// No store yet; start empty.
		return s, nil
	}

	var on fileFormat
	if err := json.Unmarshal(data, &on); err != nil {
		logging.Warn("cache store is corrupt, starting fresh", logging.Path(s.path()), logging.Err(err))
		return s, nil
	}
	if on.Version != storeVersion {
		logging.Warn("cache store version mismatch, starting fresh",
			logging.Path(s.path()), "found", on.Version, "want", storeVersion)
		return s, nil
	}
	if on.Entries != nil {
		s.entries = on.Entries
	}
	return s, nil
}

// Lookup returns the cached result for path. It is a hit only when the
// entry's stored hash equals currentHash; absence or mismatch is a miss.
func (s *Store) Lookup(path, currentHash string) (model.ExtractionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[path]
	if !ok || entry.Hash != currentHash {
		return model.ExtractionResult{}, false
	}
	return entry.Result, true
}

// Put stores a fresh result for path, replacing any previous entry.
func (s *Store) Put(path, hash string, result model.ExtractionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[path] = Entry{
		Hash:         hash,
		LastComputed: s.nowFunc(),
		Result:       result,
	}
}

// Clear empties the store and removes the persisted file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
	if exists, _ := afero.Exists(s.fs, s.path()); exists {
		if err := s.fs.Remove(s.path()); err != nil {
			return fmt.Errorf("remove cache store: %w", err)
		}
	}
	return nil
}

// Save persists the store atomically: the new contents are written to a
// temporary file and renamed over the old store, so readers never observe
// a torn write.
func (s *Store) Save() error {
	s.mu.RLock()
	on := fileFormat{Version: storeVersion, Entries: s.entries}
	data, err := json.MarshalIndent(on, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal cache store: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache store: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("replace cache store: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Paths returns the cached paths in sorted order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Prune drops entries whose paths are absent from keep, the set
// difference between the cached key sequence and the current file set.
// Returns the number of entries removed.
func (s *Store) Prune(keep map[string]struct{}) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for p := range s.entries {
		if _, ok := keep[p]; !ok {
			delete(s.entries, p)
			pruned++
		}
	}
	return pruned
}

// Stats describes the persisted store.
type Stats struct {
	Entries   int       `json:"entries"`
	SizeBytes int64     `json:"size_bytes"`
	Oldest    time.Time `json:"oldest,omitempty"`
	Newest    time.Time `json:"newest,omitempty"`
}

// Stats returns entry count, store size on disk and the oldest / newest
// computation timestamps.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Entries: len(s.entries)}
	if info, err := s.fs.Stat(s.path()); err == nil {
		stats.SizeBytes = info.Size()
	}
	for _, e := range s.entries {
		if stats.Oldest.IsZero() || e.LastComputed.Before(stats.Oldest) {
			stats.Oldest = e.LastComputed
		}
		if stats.Newest.IsZero() || e.LastComputed.After(stats.Newest) {
			stats.Newest = e.LastComputed
		}
	}
	return stats
}

func (s *Store) path() string {
	return filepath.Join(s.dir, StoreFile)
}
