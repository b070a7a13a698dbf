// Package stores provides the in-memory source-of-truth collections the
// back office keeps per entity type. The original screens each patched their
// own local arrays after every call; here a single store per entity is
// shared by queries, commands and the refresh job, with explicit Replace
// (full refresh) and Upsert/Remove (confirmed single-entity results).
//
// Stores are only mutated after a completed collaborator operation, never
// optimistically. A failed or malformed fetch leaves the store untouched,
// because decoding happens entirely before Replace is called.
package stores

import "sync"

// Store is a concurrency-safe keyed collection preserving insertion order
// for listing.
type Store[T any] struct {
	mu    sync.RWMutex
	keyOf func(T) string
	items []T
	index map[string]int
}

// NewStore creates an empty store using keyOf to derive item keys.
func NewStore[T any](keyOf func(T) string) *Store[T] {
	return &Store[T]{
		keyOf: keyOf,
		index: make(map[string]int),
	}
}

// Replace swaps the entire collection for the given items. Used after a
// successful full list fetch.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]T, len(items))
	copy(s.items, items)

	s.index = make(map[string]int, len(items))
	for i, item := range s.items {
		s.index[s.keyOf(item)] = i
	}
}

// Upsert inserts or replaces a single item by its key. Used after a
// confirmed create or update result.
func (s *Store[T]) Upsert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keyOf(item)
	if i, ok := s.index[key]; ok {
		s.items[i] = item
		return
	}

	s.index[key] = len(s.items)
	s.items = append(s.items, item)
}

// Remove deletes the item with the given key, reporting whether it was
// present. Removing an absent key is not an error: deletion is issued to
// the collaborator without a local pre-check.
func (s *Store[T]) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return false
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, key)
	for j := i; j < len(s.items); j++ {
		s.index[s.keyOf(s.items[j])] = j
	}
	return true
}

// Get returns the item with the given key.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[key]; ok {
		return s.items[i], true
	}

	var zero T
	return zero, false
}

// All returns a snapshot of the collection in listing order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Len returns the number of stored items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
