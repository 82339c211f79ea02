package leaderboard

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores one `<name> <score>` record per line in a plain text file
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for path; the file is created on first append
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file path
func (b *FileBackend) Path() string {
	return b.path
}

// Append writes one record at the end of the file
func (b *FileBackend) Append(e Entry) error {
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}

	record := FormatRecord(e) + "\n"
	terminated, err := endsWithNewline(f)
	if err != nil {
		f.Close()
		return err
	}
	if !terminated {
		record = "\n" + record
	}

	if _, err := io.WriteString(f, record); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// endsWithNewline reports whether f is empty or its last byte is '\n'
// A record left unterminated by an interrupted write or a hand edit must not absorb the next one
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

// Read parses the file line by line; a missing file is an empty leaderboard
// Blank lines are ignored, malformed lines are collected and skipped
func (b *FileBackend) Read(limit int) (ReadResult, error) {
	f, err := os.Open(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ReadResult{}, nil
		}
		return ReadResult{}, err
	}
	defer f.Close()

	c := collector{limit: limit}
	r := bufio.NewReader(f)

	for lineNo := 1; ; lineNo++ {
		line, err := r.ReadString('\n')
		if text := strings.TrimRight(line, "\r\n"); strings.TrimSpace(text) != "" {
			e, perr := ParseRecord(text)
			c.add(lineNo, text, e, perr)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return ReadResult{}, err
		}
	}

	return c.res, nil
}

// Truncate empties the file, creating it if absent
func (b *FileBackend) Truncate() error {
	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Close is a no-op; files are opened per operation
func (b *FileBackend) Close() error {
	return nil
}
