package history

import (
	"sync"
	"time"
)

// DefaultLimit bounds how many entries a zero Store keeps.
const DefaultLimit = 100

// Entry records one completed console query.
type Entry struct {
	Endpoint string
	Input    string
	Answer   string
	Err      error
	Started  time.Time
	Elapsed  time.Duration
}

// Failed reports whether the query ended in an error.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Snapshot represents the history visible to the UI, oldest first.
type Snapshot struct {
	Entries     []Entry
	Failures    int
	LastUpdated time.Time
}

// Latest returns the newest entry.
func (s Snapshot) Latest() (Entry, bool) {
	if len(s.Entries) == 0 {
		return Entry{}, false
	}
	return s.Entries[len(s.Entries)-1], true
}

// Store coordinates concurrent access to the query history.
type Store struct {
	mu       sync.RWMutex
	limit    int
	snapshot Snapshot
}

// NewStore returns a Store that keeps at most limit entries.
func NewStore(limit int) *Store {
	return &Store{limit: limit}
}

// Add appends an entry, dropping the oldest once the limit is reached.
func (s *Store) Add(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := s.limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	s.snapshot.Entries = append(s.snapshot.Entries, e)
	if over := len(s.snapshot.Entries) - limit; over > 0 {
		s.snapshot.Entries = append([]Entry(nil), s.snapshot.Entries[over:]...)
	}
	if e.Failed() {
		s.snapshot.Failures++
	}
	s.snapshot.LastUpdated = time.Now()
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{LastUpdated: time.Now()}
}

// Snapshot returns a copy of the current history.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	return snap
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
