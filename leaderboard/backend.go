package leaderboard

import (
	"fmt"
	"strings"
)

// Backend kinds accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ReadResult is one full pass over durable storage
type ReadResult struct {
	Entries []Entry        // First `limit` valid records, storage order
	Skipped []*RecordError // Malformed records, skipped individually
	Dropped int            // Valid records past the limit
}

// Backend is the durable side of the leaderboard
// Records are additive: Append never rewrites or deduplicates
type Backend interface {
	Append(e Entry) error
	Read(limit int) (ReadResult, error)
	Truncate() error
	Close() error
}

// collector accumulates a ReadResult under the capacity policy
type collector struct {
	limit int
	res   ReadResult
}

func (c *collector) add(pos int, text string, e Entry, err error) {
	if err != nil {
		c.res.Skipped = append(c.res.Skipped, &RecordError{Pos: pos, Text: text, Err: err})
		return
	}
	if len(c.res.Entries) >= c.limit {
		c.res.Dropped++
		return
	}
	c.res.Entries = append(c.res.Entries, e)
}

// OpenBackend constructs a backend by kind
func OpenBackend(kind, path string) (Backend, error) {
	switch strings.ToLower(kind) {
	case BackendFile, "":
		return NewFileBackend(path), nil
	case BackendSQLite:
		return NewSQLiteBackend(path)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, kind)
	}
}
