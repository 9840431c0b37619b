// Package sqlite provides a snapshot backend on a single-table SQLite
// database, for installs that want one durable file instead of a directory
// of JSON documents.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// KV stores snapshot values in a snapshots(key, value) table.
type KV struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// snapshots table exists.
func Open(path string) (*KV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &KV{db: db}, nil
}

// Get returns the stored value for key.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put upserts every pair inside one transaction so the snapshot is written
// as a unit.
func (s *KV) Put(ctx context.Context, pairs map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO snapshots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *KV) Close() error {
	return s.db.Close()
}
