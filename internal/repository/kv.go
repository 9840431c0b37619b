package repository

import "context"

// Snapshot storage keys. The two collections are independently keyed values
// in whatever backend is configured.
const (
	KeyTransactions = "transactions"
	KeyGoals        = "goals"
)

// KV is the narrow port a snapshot backend implements. Put receives every
// key of the snapshot in one call so backends can apply the write as a unit
// (one transaction, one MSET, or temp-file renames done together); a
// successful Put means the whole snapshot is durable.
type KV interface {
	// Get returns the stored value for key, or domain.ErrKeyNotFound when
	// the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put durably stores every pair before returning.
	Put(ctx context.Context, pairs map[string][]byte) error
	// Close releases any resources held by the backend.
	Close() error
}
