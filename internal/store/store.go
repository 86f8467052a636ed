// Package store wraps the embedded SQLite database holding the fixture
// tables. It is a single-writer, rebuild-from-scratch store: ingestion drops
// and recreates the schema on every run, and nothing mutates rows afterward.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides access to the fixture database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at path and applies the schema.
//
// The connection is configured with:
//   - WAL mode for reads during the bulk load
//   - 5-second busy timeout
//   - foreign key enforcement (load-order violations fail loudly)
//   - a single connection, since SQLite allows one writer
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Query executes a query and returns the resulting rows.
// Callers are responsible for closing the returned rows.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, query, args...)
}

// Reset drops all fixture tables and recreates them empty. The loader calls
// this before every ingestion: the store is not re-runnable in place, prior
// state is always discarded.
func (s *Store) Reset(ctx context.Context) error {
	// Drop children before parents to satisfy foreign keys.
	drops := []string{
		"DROP TABLE IF EXISTS payments",
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS products",
		"DROP TABLE IF EXISTS customers",
	}
	for _, stmt := range drops {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("reset: apply schema: %w", err)
	}
	return nil
}

// Count returns the row count of one fixture table.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	if !validTable[table] {
		return 0, fmt.Errorf("count: unknown table %q", table)
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

var validTable = map[string]bool{
	"customers":   true,
	"products":    true,
	"orders":      true,
	"order_items": true,
	"payments":    true,
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}
