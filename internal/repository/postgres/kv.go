// Package postgres provides a snapshot backend on PostgreSQL, for deployments
// that already run a database server and want the ledger stored next to it.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mbrell/centsible/centsible-backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
)`

// KV stores snapshot values in a snapshots(key, value) table.
type KV struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL, verifies the connection and ensures the
// snapshots table exists.
func Open(ctx context.Context, databaseURL string) (*KV, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &KV{pool: pool}, nil
}

// Get returns the stored value for key.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, "SELECT value FROM snapshots WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put upserts every pair inside one transaction so the snapshot is written
// as a unit.
func (s *KV) Put(ctx context.Context, pairs map[string][]byte) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for key, value := range pairs {
		_, err := tx.Exec(ctx,
			"INSERT INTO snapshots (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
			key, value)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", key, err)
		}
	}
	return tx.Commit(ctx)
}

// Close releases the connection pool.
func (s *KV) Close() error {
	s.pool.Close()
	return nil
}
