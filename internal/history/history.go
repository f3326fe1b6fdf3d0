// Package history implements the in-memory clipboard history.
//
// The store keeps two pieces of state with different jobs: the ordered
// entry list (what the user sees and can restore) and the last observed
// snapshot (used only to suppress repeated poll ticks over an unchanged
// clipboard). How the two interact is subtle:
// see Observe.
package history

import (
	"sync"

	"go.klb.dev/kovak/internal/entry"
)

// Store is an ordered, duplicate-suppressing list of clipboard entries.
type Store struct {
	mu      sync.RWMutex
	entries []entry.Entry
	last    *entry.Entry // last observed snapshot, nil = unset
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Observe feeds one classified poll-tick snapshot through the dedup rules
// and reports whether it was appended to the history.
//
// Rules, in order:
//   - an image whose label is already in the history is a complete no-op
//     (the last-observed baseline is not touched)
//   - a snapshot equal to the last observed one is a no-op
//   - the very first observation only sets the baseline; whatever was on
//     the clipboard when polling started is not a history event
//   - otherwise the entry is appended unless an equal entry already exists;
//     the baseline is updated either way
func (s *Store) Observe(e entry.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Kind == entry.KindImage && s.containsLocked(e) {
		return false
	}
	if s.last != nil && e.Equal(*s.last) {
		return false
	}
	if s.last == nil {
		s.last = &e
		return false
	}

	appended := false
	if !s.containsLocked(e) {
		s.entries = append(s.entries, e)
		appended = true
	}
	s.last = &e
	return appended
}

// Append adds an entry unconditionally. Normal operation goes through
// Observe; Append exists for the IPC restore path and tests.
func (s *Store) Append(e entry.Entry) {
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
}

// Contains reports whether an equal entry is already recorded.
func (s *Store) Contains(e entry.Entry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.containsLocked(e)
}

func (s *Store) containsLocked(e entry.Entry) bool {
	for _, have := range s.entries {
		if have.Equal(e) {
			return true
		}
	}
	return false
}

// All returns a copy of the entries in discovery order, oldest first.
func (s *Store) All() []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear empties the history and resets the last-observed baseline, so the
// next poll tick treats the current clipboard as a fresh first observation
// rather than re-appending it.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.last = nil
	s.mu.Unlock()
}
