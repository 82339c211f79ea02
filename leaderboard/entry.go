package leaderboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/pingpong/constant"
)

// NotFound is returned by FindByName when no entry matches
const NotFound = -1

// Entry is one ranked (name, score) record
// Duplicate names are distinct entries
type Entry struct {
	Name  string
	Score int
}

// ValidateName enforces the storage-safe name rules:
// non-empty, at most constant.MaxNameLength runes, printable, no whitespace
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if n := utf8.RuneCountInString(name); n > constant.MaxNameLength {
		return fmt.Errorf("%w: %d runes exceeds %d", ErrInvalidName, n, constant.MaxNameLength)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidName)
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: contains whitespace", ErrInvalidName)
		}
		if !unicode.IsPrint(r) {
			return fmt.Errorf("%w: contains non-printable %U", ErrInvalidName, r)
		}
	}
	return nil
}

// ValidateScore rejects negative scores
func ValidateScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidScore, score)
	}
	return nil
}

// Validate checks both fields
func (e Entry) Validate() error {
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	return ValidateScore(e.Score)
}

// FormatRecord renders e in the text storage format without the trailing newline
func FormatRecord(e Entry) string {
	return e.Name + " " + strconv.Itoa(e.Score)
}

// ParseRecord parses one `<name> <score>` line
func ParseRecord(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	if !isDigits(fields[1]) {
		return Entry{}, fmt.Errorf("%w: %q: not a base-10 non-negative integer", ErrInvalidScore, fields[1])
	}

	score, err := strconv.Atoi(fields[1])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrInvalidScore, fields[1], err)
	}

	e := Entry{Name: fields[0], Score: score}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
