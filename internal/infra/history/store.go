// Package history stores completed timer phases in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/routinify/internal/domain"

	_ "modernc.org/sqlite"
)

// Ensure Store implements domain.PhaseHistory.
var _ domain.PhaseHistory = (*Store)(nil)

// Store is a PhaseHistory backed by a SQLite file.
// The database is opened on first use so commands that never touch history
// do not pay for it.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// New creates a Store for the given database path.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure history: %w", err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	s.db = db
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS phases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			phase TEXT NOT NULL,
			next_phase TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			work_session_count INTEGER NOT NULL,
			focus TEXT NOT NULL,
			top_task TEXT NOT NULL,
			ended_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phases_ended ON phases(ended_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts a completed phase.
func (s *Store) Record(ctx context.Context, rec domain.PhaseRecord) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO phases (phase, next_phase, duration_seconds, work_session_count, focus, top_task, ended_at_unixms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(rec.Phase), string(rec.Next), rec.DurationSeconds, rec.WorkSessionCount,
		rec.Focus, rec.TopTask, rec.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert phase: %w", err)
	}
	return nil
}

// List returns phases that ended at or after since, newest first.
func (s *Store) List(ctx context.Context, since time.Time, limit int) ([]domain.PhaseRecord, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, phase, next_phase, duration_seconds, work_session_count, focus, top_task, ended_at_unixms
		 FROM phases WHERE ended_at_unixms >= ? ORDER BY ended_at_unixms DESC, id DESC LIMIT ?`,
		since.UnixMilli(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query phases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.PhaseRecord
	for rows.Next() {
		var (
			rec          domain.PhaseRecord
			phase, next  string
			endedAtMilli int64
		)
		if err := rows.Scan(&rec.ID, &phase, &next, &rec.DurationSeconds, &rec.WorkSessionCount,
			&rec.Focus, &rec.TopTask, &endedAtMilli); err != nil {
			return nil, fmt.Errorf("scan phase: %w", err)
		}
		rec.Phase = domain.PhaseName(phase)
		rec.Next = domain.PhaseName(next)
		rec.EndedAt = time.UnixMilli(endedAtMilli)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate phases: %w", err)
	}
	return out, nil
}

// Close closes the database if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
