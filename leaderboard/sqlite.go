package leaderboard

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteBackend stores records in a single `scores` table
// Storage order is the monotonically increasing seq column
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at path and runs migrations
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer: the game loop
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBackend) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_seq ON scores(seq)`,
	}

	for _, m := range migrations {
		if _, err := b.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Append inserts one record after all existing ones
func (b *SQLiteBackend) Append(e Entry) error {
	_, err := b.db.Exec(
		`INSERT INTO scores (id, seq, name, score)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM scores), ?, ?)`,
		uuid.New().String(), e.Name, e.Score,
	)
	return err
}

// Read scans rows in seq order, validating each like a text record
func (b *SQLiteBackend) Read(limit int) (ReadResult, error) {
	rows, err := b.db.Query(`SELECT name, score FROM scores ORDER BY seq`)
	if err != nil {
		return ReadResult{}, err
	}
	defer rows.Close()

	c := collector{limit: limit}
	for pos := 1; rows.Next(); pos++ {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return ReadResult{}, err
		}
		c.add(pos, FormatRecord(e), e, e.Validate())
	}
	if err := rows.Err(); err != nil {
		return ReadResult{}, err
	}

	return c.res, nil
}

// Truncate deletes every row
func (b *SQLiteBackend) Truncate() error {
	_, err := b.db.Exec(`DELETE FROM scores`)
	return err
}

// Close closes the database connection
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
