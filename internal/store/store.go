// Package store provides SQLite persistence for learner profiles, lessons,
// review items, the event log, and the generated-content cache.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying sqlx handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns a UserRepo backed by this store.
func (s *Store) Users() *UserRepo { return &UserRepo{db: s.db} }

// Lessons returns a LessonRepo backed by this store.
func (s *Store) Lessons() *LessonRepo { return &LessonRepo{db: s.db} }

// Reviews returns a ReviewRepo backed by this store.
func (s *Store) Reviews() *ReviewRepo { return &ReviewRepo{db: s.db} }

// Events returns an EventRepo backed by this store.
func (s *Store) Events() *EventRepo { return &EventRepo{db: s.db} }

// Cache returns a CacheRepo backed by this store.
func (s *Store) Cache() *CacheRepo { return &CacheRepo{db: s.db} }

// RunInTx runs fn within a database transaction. If fn returns an error the
// transaction is rolled back, otherwise it is committed.
func (s *Store) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-writer durability.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates all tables and indexes. Idempotent.
func migrate(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			learner_id TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			age        TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			level      TEXT NOT NULL DEFAULT '',
			cefr       TEXT NOT NULL DEFAULT '',
			goal       TEXT NOT NULL DEFAULT '',
			weaknesses TEXT NOT NULL DEFAULT '[]',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lessons (
			id         TEXT PRIMARY KEY,
			learner_id TEXT NOT NULL,
			content    TEXT NOT NULL,
			exercise   TEXT NOT NULL,
			payload    TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lessons_learner ON lessons (learner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			learner_id    TEXT NOT NULL,
			item_id       TEXT NOT NULL,
			exercise      TEXT NOT NULL,
			ease          REAL NOT NULL,
			interval_days INTEGER NOT NULL,
			next_due_at   INTEGER NOT NULL,
			correct_count INTEGER NOT NULL DEFAULT 0,
			wrong_count   INTEGER NOT NULL DEFAULT 0,
			created_at    INTEGER NOT NULL,
			updated_at    INTEGER NOT NULL,
			PRIMARY KEY (learner_id, item_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_due ON reviews (learner_id, next_due_at)`,
		`CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			learner_id TEXT NOT NULL,
			event_name TEXT NOT NULL,
			payload    TEXT NOT NULL DEFAULT '{}',
			ts         INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_learner_ts ON events (learner_id, ts)`,
		`CREATE TABLE IF NOT EXISTS generated_cache (
			cache_key  TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			expires_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LINGOCOACH_DB environment variable
// 2. $XDG_DATA_HOME/lingocoach/lingocoach.db
// 3. ~/.local/share/lingocoach/lingocoach.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINGOCOACH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lingocoach", "lingocoach.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
