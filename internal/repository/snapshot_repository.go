package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SnapshotRepository implements domain.SnapshotStore on top of a KV backend.
// It owns the wire format: each collection is stored as a JSON array under
// its own key, with amounts encoded as plain JSON numbers taken from the
// decimal string form so values round-trip exactly.
type SnapshotRepository struct {
	kv KV
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(kv KV) *SnapshotRepository {
	return &SnapshotRepository{kv: kv}
}

// transactionRecord is the persisted shape of a transaction.
type transactionRecord struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

// goalRecord is the persisted shape of a saving goal.
type goalRecord struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Target  json.Number `json:"target"`
	Current json.Number `json:"current"`
	Color   string      `json:"color"`
}

// Load reads both collections. A missing transactions key yields an empty
// collection and a missing goals key yields the seed defaults. Malformed
// stored data is treated the same as missing: the collection falls back to
// its default and a warning is logged, but no error reaches the caller.
// Only backend I/O failures are returned.
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	raw, err := r.kv.Get(ctx, KeyTransactions)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		snap.Transactions = []*domain.Transaction{}
	case err != nil:
		return nil, fmt.Errorf("load transactions: %w", err)
	default:
		transactions, decodeErr := decodeTransactions(raw)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Msg("Stored transactions are malformed, starting from an empty collection")
			transactions = []*domain.Transaction{}
		}
		snap.Transactions = transactions
	}

	raw, err = r.kv.Get(ctx, KeyGoals)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		snap.Goals = domain.SeedGoals()
	case err != nil:
		return nil, fmt.Errorf("load goals: %w", err)
	default:
		goals, decodeErr := decodeGoals(raw)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Msg("Stored goals are malformed, falling back to seed goals")
			goals = domain.SeedGoals()
		}
		snap.Goals = goals
	}

	return snap, nil
}

// Save writes both collections in a single Put, even when only one of them
// changed. Whole-snapshot write-through keeps the persistence model simple;
// across concurrent sessions sharing one backend the behavior is
// last-write-wins.
func (r *SnapshotRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	transactions, err := encodeTransactions(snap.Transactions)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	goals, err := encodeGoals(snap.Goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}

	pairs := map[string][]byte{
		KeyTransactions: transactions,
		KeyGoals:        goals,
	}
	if err := r.kv.Put(ctx, pairs); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func encodeTransactions(transactions []*domain.Transaction) ([]byte, error) {
	records := make([]transactionRecord, len(transactions))
	for i, t := range transactions {
		records[i] = transactionRecord{
			ID:          t.ID,
			Description: t.Description,
			Amount:      json.Number(t.Amount.String()),
			Type:        string(t.Type),
			Category:    t.Category,
			Date:        t.Date.Format(time.RFC3339Nano),
		}
	}
	return json.Marshal(records)
}

func decodeTransactions(raw []byte) ([]*domain.Transaction, error) {
	var records []transactionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	transactions := make([]*domain.Transaction, len(records))
	for i, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("transaction %q: bad amount %q", rec.ID, rec.Amount)
		}
		date, err := time.Parse(time.RFC3339Nano, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %q: bad date %q", rec.ID, rec.Date)
		}
		kind := domain.TransactionType(rec.Type)
		if !domain.ValidTransactionType(kind) {
			return nil, fmt.Errorf("transaction %q: bad type %q", rec.ID, rec.Type)
		}
		transactions[i] = &domain.Transaction{
			ID:          rec.ID,
			Description: rec.Description,
			Amount:      amount,
			Type:        kind,
			Category:    rec.Category,
			Date:        date,
		}
	}
	return transactions, nil
}

func encodeGoals(goals []*domain.SavingGoal) ([]byte, error) {
	records := make([]goalRecord, len(goals))
	for i, g := range goals {
		records[i] = goalRecord{
			ID:      g.ID,
			Name:    g.Name,
			Target:  json.Number(g.Target.String()),
			Current: json.Number(g.Current.String()),
			Color:   g.Color,
		}
	}
	return json.Marshal(records)
}

func decodeGoals(raw []byte) ([]*domain.SavingGoal, error) {
	var records []goalRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	goals := make([]*domain.SavingGoal, len(records))
	for i, rec := range records {
		target, err := decimal.NewFromString(rec.Target.String())
		if err != nil {
			return nil, fmt.Errorf("goal %q: bad target %q", rec.ID, rec.Target)
		}
		current, err := decimal.NewFromString(rec.Current.String())
		if err != nil {
			return nil, fmt.Errorf("goal %q: bad current %q", rec.ID, rec.Current)
		}
		goals[i] = &domain.SavingGoal{
			ID:      rec.ID,
			Name:    rec.Name,
			Target:  target,
			Current: current,
			Color:   rec.Color,
		}
	}
	return goals, nil
}
