package sqlite

import (
	"context"
	"database/sql"
)

// DB exposes the internal *sql.DB for test helpers in sqlite_test.
// This file only compiles during `go test`.
func (s *Store) DB() *sql.DB {
	return s.db
}

// FailExec makes every subsequent write return err.
func (s *Store) FailExec(err error) {
	s.hooks.exec = func(context.Context, *sql.DB, string, ...any) (sql.Result, error) {
		return nil, err
	}
}

// FailQuery makes every subsequent read return err.
func (s *Store) FailQuery(err error) {
	s.hooks.query = func(context.Context, *sql.DB, string, ...any) (*sql.Rows, error) {
		return nil, err
	}
}

// SetOpenDB swaps the driver opener and returns a restore func.
func SetOpenDB(fn func(driverName, dsn string) (*sql.DB, error)) func() {
	prev := openDB
	openDB = fn
	return func() { openDB = prev }
}
