// Package sqlite implements memory.Store on an embedded SQLite database.
//
// It is the zero-configuration backend: a single file under the data
// directory, opened in WAL mode. The MongoDB store is the production
// document-store backend; both satisfy the same equality-filter contract.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "memory.db"

// Config holds SQLite store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration for the SQLite store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".assistant-tools")}
}

// Store is a memory.Store backed by SQLite.
type Store struct {
	db    *sql.DB
	hooks storeHooks
}

var _ memory.Store = (*Store)(nil)

type storeHooks struct {
	exec  func(ctx context.Context, db *sql.DB, query string, args ...any) (sql.Result, error)
	query func(ctx context.Context, db *sql.DB, query string, args ...any) (*sql.Rows, error)
}

func (s *Store) execHook(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if s.hooks.exec != nil {
		return s.hooks.exec(ctx, s.db, query, args...)
	}
	return s.db.ExecContext(ctx, query, args...)
}

func (s *Store) queryHook(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if s.hooks.query != nil {
		return s.hooks.query(ctx, s.db, query, args...)
	}
	return s.db.QueryContext(ctx, query, args...)
}

// New creates the data directory if needed, opens the database with WAL
// mode and ensures the schema exists.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("sqlite: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFileName)
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}
	// One connection serialises writers so the pragmas below apply to every query.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// seq preserves insertion order for listing; memory_id is the public key.
func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS memories (
			seq        INTEGER PRIMARY KEY AUTOINCREMENT,
			memory_id  TEXT NOT NULL UNIQUE,
			user_id    TEXT NOT NULL,
			memory     TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		);

		CREATE INDEX IF NOT EXISTS idx_memories_user ON memories(user_id);
	`)
	return err
}

// Insert adds a new record.
func (s *Store) Insert(ctx context.Context, rec memory.Record) error {
	_, err := s.execHook(ctx,
		`INSERT INTO memories (memory_id, user_id, memory) VALUES (?, ?, ?)`,
		rec.MemoryID, rec.UserID, rec.Memory,
	)
	if err != nil {
		return fmt.Errorf("sqlite: insert: %w", err)
	}
	return nil
}

// ListByUser returns the user's records in insertion order.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]memory.Record, error) {
	rows, err := s.queryHook(ctx,
		`SELECT memory_id, user_id, memory FROM memories WHERE user_id = ? ORDER BY seq`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []memory.Record{}
	for rows.Next() {
		var r memory.Record
		if err := rows.Scan(&r.MemoryID, &r.UserID, &r.Memory); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list: %w", err)
	}
	return results, nil
}

// DeleteOne removes the record matching both ids.
func (s *Store) DeleteOne(ctx context.Context, userID, memoryID string) (int64, error) {
	return s.delete(ctx,
		`DELETE FROM memories WHERE user_id = ? AND memory_id = ?`,
		userID, memoryID,
	)
}

// DeleteByUser removes all of the user's records.
func (s *Store) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return s.delete(ctx, `DELETE FROM memories WHERE user_id = ?`, userID)
}

func (s *Store) delete(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.execHook(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("sqlite: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite: rows affected: %w", err)
	}
	return n, nil
}
