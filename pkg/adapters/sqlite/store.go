// Package sqlite implements core.Store on a single SQLite table.
// It uses ncruces/go-sqlite3 through database/sql, so no cgo is required.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/aretw0/notebook/pkg/core"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);`

// Store is the SQLite-backed key-value store.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	dsn    string
	logger *slog.Logger
}

// Open creates a store with a specific data source name.
// Use MemoryDSN for an in-memory database or a file path for persistent storage.
func Open(dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if logger != nil {
		logger.Debug("sqlite store opened", "dsn", dsn)
	}
	return &Store{db: db, dsn: dsn, logger: logger}, nil
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, core.ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return "", false, core.ErrClosed
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, true, nil
}

// Set implements core.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return core.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return core.ErrClosed
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in ascending order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, core.ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database connection.
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

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite-store"
}

var _ core.Store = (*Store)(nil)
