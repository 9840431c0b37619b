package testutil

import (
	"context"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
)

// MockSnapshotStore is a mock implementation of domain.SnapshotStore. It
// keeps the last saved snapshot in memory, counts writes, and can be primed
// to fail so tests can assert that a failed write leaves state untouched.
type MockSnapshotStore struct {
	Snapshot  *domain.Snapshot
	SaveCount int
	LoadErr   error
	SaveErr   error
}

// NewMockSnapshotStore creates a store primed with an empty transaction
// collection and the seed goals, matching what a fresh load produces.
func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{
		Snapshot: &domain.Snapshot{
			Transactions: []*domain.Transaction{},
			Goals:        domain.SeedGoals(),
		},
	}
}

// Load returns a clone of the stored snapshot
func (m *MockSnapshotStore) Load(_ context.Context) (*domain.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Snapshot.Clone(), nil
}

// Save stores a clone of the snapshot and increments SaveCount
func (m *MockSnapshotStore) Save(_ context.Context, snap *domain.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshot = snap.Clone()
	m.SaveCount++
	return nil
}
