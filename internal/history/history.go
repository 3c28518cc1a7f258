// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite log of notes saved to Evernote, so
// past saves can be listed without hitting the service. Recording is
// best-effort: a history failure never fails a completed save.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chatnote/pkg/types"
)

const dbFile = "chatnote.db"

// Store manages the save-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dir/chatnote.db, creating
// the schema if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS saves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guid TEXT NOT NULL,
		title TEXT NOT NULL,
		notebook TEXT,
		tags TEXT,
		sandbox INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one save to the log. The entry's CreatedAt defaults to now
// when zero.
func (s *Store) Record(ctx context.Context, entry types.HistoryEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (guid, title, notebook, tags, sandbox, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.GUID, entry.Title, entry.Notebook,
		strings.Join(entry.Tags, ","), entry.Sandbox,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording save: %w", err)
	}
	return nil
}

// Recent returns the most recent saves, newest first. A limit of 0 or less
// means 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, guid, title, notebook, tags, sandbox, created_at
		 FROM saves ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying saves: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var tags, createdAt string
		if err := rows.Scan(&e.ID, &e.GUID, &e.Title, &e.Notebook, &tags, &e.Sandbox, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning save row: %w", err)
		}
		if tags != "" {
			e.Tags = strings.Split(tags, ",")
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading save rows: %w", err)
	}
	return entries, nil
}
