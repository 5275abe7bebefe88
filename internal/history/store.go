// Package history persists a local ledger of build runs in SQLite so
// `vsixbuilder history` can show what was built, when, and from which
// commit. The database is a plain file next to the extension; no server.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded build invocation.
type Run struct {
	ID          string
	StartedAt   time.Time
	Duration    time.Duration
	Version     string
	Outcome     string
	Archive     string
	ArchiveSize int64
	Commit      string
	Dirty       bool
}

// Store is a SQLite-backed run ledger.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates or opens the history database at dbPath, creating parent
// directories as needed. Use ":memory:" for an in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		version TEXT NOT NULL,
		outcome TEXT NOT NULL,
		archive TEXT,
		archive_size INTEGER,
		commit_hash TEXT,
		dirty INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts a run row.
func (s *Store) Record(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := 0
	if run.Dirty {
		dirty = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, duration_ms, version, outcome, archive, archive_size, commit_hash, dirty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.Unix(), run.Duration.Milliseconds(), run.Version,
		run.Outcome, run.Archive, run.ArchiveSize, run.Commit, dirty,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, version, outcome, archive, archive_size, commit_hash, dirty
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedUnix, durationMS int64
		var dirty int
		if err := rows.Scan(&r.ID, &startedUnix, &durationMS, &r.Version, &r.Outcome,
			&r.Archive, &r.ArchiveSize, &r.Commit, &dirty); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.Unix(startedUnix, 0)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.Dirty = dirty != 0
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return runs, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
