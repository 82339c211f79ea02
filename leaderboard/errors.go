package leaderboard

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidName     = errors.New("invalid player name")
	ErrInvalidScore    = errors.New("invalid score")
	ErrInvalidConfig   = errors.New("invalid leaderboard config")
	ErrStorage         = errors.New("leaderboard storage failure")
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError describes one persisted record skipped during load
// Matches both ErrMalformedRecord and the underlying cause with errors.Is
type RecordError struct {
	Pos  int    // 1-based line (file) or row (sqlite) in storage order
	Text string // Raw record as read
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d %q: %v", e.Pos, e.Text, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}
