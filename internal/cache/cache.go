// Package cache holds fetched localization entries per project with an
// explicit loading/error/data state for each key. Controllers invalidate a
// key after a successful mutation; the next read refetches.
package cache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// State describes one cache key's lifecycle.
type State int

const (
	// StateEmpty means the key has never been fetched or was invalidated.
	StateEmpty State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateReady means Entries holds fetched data.
	StateReady
	// StateError means the last fetch failed; Err holds the failure.
	StateError
)

// String returns the state name for logs and error messages.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Key identifies one cached resource. Resource distinguishes entry lists
// from any future cached collections sharing this cache.
type Key struct {
	Resource  string
	ProjectID string
}

// EntriesKey is the conventional key for a project's entry list.
func EntriesKey(projectID string) Key {
	return Key{Resource: "entries", ProjectID: projectID}
}

// Fetcher loads the entry list for a project, typically the sync client's
// FetchEntries.
type Fetcher func(ctx context.Context, projectID string) ([]catalog.Entry, error)

type slot struct {
	state   State
	entries []catalog.Entry
	err     error
}

// EntryCache caches entry lists keyed by (resource, projectID).
type EntryCache struct {
	mu    sync.RWMutex
	fetch Fetcher
	slots map[Key]*slot
	log   *slog.Logger
}

// New creates an EntryCache backed by the given fetcher.
func New(fetch Fetcher, logger *slog.Logger) *EntryCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EntryCache{
		fetch: fetch,
		slots: make(map[Key]*slot),
		log:   logger,
	}
}

// Load returns cached entries for the key, fetching when the key is empty,
// errored, or invalidated. Fetch failures are not retried automatically;
// the error is stored and returned until the next Load or Refresh.
func (c *EntryCache) Load(ctx context.Context, key Key) ([]catalog.Entry, error) {
	c.mu.RLock()
	if s, ok := c.slots[key]; ok && s.state == StateReady {
		entries := s.entries
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()
	return c.Refresh(ctx, key)
}

// Refresh forces a fetch for the key regardless of its current state.
// A late response simply replaces whatever the slot holds.
func (c *EntryCache) Refresh(ctx context.Context, key Key) ([]catalog.Entry, error) {
	c.mu.Lock()
	c.slots[key] = &slot{state: StateLoading}
	c.mu.Unlock()

	entries, err := c.fetch(ctx, key.ProjectID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.slots[key] = &slot{state: StateError, err: err}
		c.log.Warn("entry fetch failed", "project", key.ProjectID, "error", err)
		return nil, err
	}
	c.slots[key] = &slot{state: StateReady, entries: entries}
	c.log.Debug("entry cache refreshed", "project", key.ProjectID, "count", len(entries))
	return entries, nil
}

// Invalidate drops the key so the next Load refetches. Called by the edit
// controllers after a successful save.
func (c *EntryCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, key)
}

// Peek returns the key's current entries, state, and error without
// triggering a fetch.
func (c *EntryCache) Peek(key Key) ([]catalog.Entry, State, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.slots[key]
	if !ok {
		return nil, StateEmpty, nil
	}
	return s.entries, s.state, s.err
}
