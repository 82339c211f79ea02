// Package leaderboard keeps the ranked (name, score) table.
//
// The in-memory slice is a read-mostly cache of the backend: it is replaced on every Load and
// emptied on Clear; Append writes only to the backend. Callers Load after Append to refresh.
package leaderboard

import (
	"fmt"
	"log"
	"sort"

	"github.com/lixenwraith/pingpong/constant"
)

// Options configures a Store
type Options struct {
	// Capacity bounds the records kept per load; 0 selects constant.LeaderboardCapacity
	Capacity int
}

// LoadReport summarizes the most recent Load
type LoadReport struct {
	Loaded  int
	Skipped int
	Dropped int
}

// Store is the ranked leaderboard over a durable Backend
// Not safe for concurrent use; the game loop goroutine owns it
type Store struct {
	backend  Backend
	capacity int
	entries  []Entry
	last     LoadReport
}

// New wraps backend; the cache starts empty until Load
func New(backend Backend, opts Options) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidConfig)
	}

	capacity := opts.Capacity
	if capacity == 0 {
		capacity = constant.LeaderboardCapacity
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidConfig, opts.Capacity)
	}

	return &Store{
		backend:  backend,
		capacity: capacity,
	}, nil
}

// Open builds the backend by kind and wraps it in a Store
func Open(kind, path string, opts Options) (*Store, error) {
	backend, err := OpenBackend(kind, path)
	if err != nil {
		return nil, err
	}

	s, err := New(backend, opts)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return s, nil
}

// Append persists one record; the cache is not touched
func (s *Store) Append(name string, score int) error {
	e := Entry{Name: name, Score: score}
	if err := e.Validate(); err != nil {
		return err
	}

	if err := s.backend.Append(e); err != nil {
		return fmt.Errorf("%w: append: %w", ErrStorage, err)
	}
	return nil
}

// Load rereads the backend, keeps the first Capacity valid records, stable-sorts them by
// descending score and replaces the cache. Malformed records are logged and skipped.
// On read failure the cache is emptied and the error returned.
func (s *Store) Load() ([]Entry, error) {
	res, err := s.backend.Read(s.capacity)
	if err != nil {
		s.entries = nil
		s.last = LoadReport{}
		return nil, fmt.Errorf("%w: load: %w", ErrStorage, err)
	}

	for _, rec := range res.Skipped {
		log.Printf("leaderboard: skipped %v", rec)
	}
	if res.Dropped > 0 {
		log.Printf("leaderboard: %d records beyond capacity %d ignored", res.Dropped, s.capacity)
	}

	entries := res.Entries
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	s.entries = entries
	s.last = LoadReport{
		Loaded:  len(entries),
		Skipped: len(res.Skipped),
		Dropped: res.Dropped,
	}
	return s.Entries(), nil
}

// IsHighScore reports whether score would top the cached leaderboard
// True for an empty cache; otherwise score must strictly exceed the current best
func (s *Store) IsHighScore(score int) bool {
	if len(s.entries) == 0 {
		return true
	}
	return score > s.entries[0].Score
}

// Clear truncates the backend and empties the cache
// The cache is emptied even if truncation fails
func (s *Store) Clear() error {
	s.entries = nil
	s.last = LoadReport{}

	if err := s.backend.Truncate(); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrStorage, err)
	}
	return nil
}

// FindByName returns the index of the first exact, case-sensitive match, or NotFound
func (s *Store) FindByName(name string) int {
	for i, e := range s.entries {
		if e.Name == name {
			return i
		}
	}
	return NotFound
}

// Entries returns a copy of the cached ranking
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the cached entry count
func (s *Store) Len() int {
	return len(s.entries)
}

// Capacity returns the per-load record bound
func (s *Store) Capacity() int {
	return s.capacity
}

// LastLoad reports counts from the most recent successful Load
func (s *Store) LastLoad() LoadReport {
	return s.last
}

// Close releases the backend
func (s *Store) Close() error {
	return s.backend.Close()
}
