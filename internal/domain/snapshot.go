package domain

import "context"

// Snapshot is the complete ledger state at a point in time: the transaction
// collection and the goal collection. It is the unit of persistence: every
// successful mutation writes the whole snapshot.
type Snapshot struct {
	Transactions []*Transaction
	Goals        []*SavingGoal
}

// Clone returns a copy that can be mutated without affecting the receiver.
// Transactions are immutable so only the slice is copied; goals are copied
// by value because contributions and upserts rewrite their fields.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Transactions: make([]*Transaction, len(s.Transactions)),
		Goals:        make([]*SavingGoal, len(s.Goals)),
	}
	copy(out.Transactions, s.Transactions)
	for i, g := range s.Goals {
		goal := *g
		out.Goals[i] = &goal
	}
	return out
}

// SnapshotStore persists and restores the full ledger snapshot. Save writes
// both collections as a unit; Load falls back to defaults for any collection
// that is missing or fails to decode, and only returns an error when the
// backing store itself is unreachable.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
