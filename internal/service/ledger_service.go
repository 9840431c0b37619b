package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerService owns the ledger state: the transaction and goal collections.
// Every successful mutation is written through to the snapshot store before
// it becomes visible; a failed write leaves the in-memory state untouched, so
// callers never observe a mutation that is not durable.
//
// The logical model is one session, but the HTTP server is concurrent, so a
// mutex serializes access. Across separate processes sharing one backend the
// behavior is whole-snapshot last-write-wins; the service makes no
// cross-session consistency guarantees.
type LedgerService struct {
	store domain.SnapshotStore

	mu   sync.Mutex
	snap *domain.Snapshot
}

// NewLedgerService loads the persisted snapshot and returns a ready service.
// A missing or malformed snapshot falls back to defaults inside the store;
// only backend failures surface here.
func NewLedgerService(ctx context.Context, store domain.SnapshotStore) (*LedgerService, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &LedgerService{store: store, snap: snap}, nil
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Category    string
}

// AddTransaction validates the input, assigns an ID and creation timestamp,
// prepends the record and persists the snapshot.
func (s *LedgerService) AddTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidTransactionType(input.Type) {
		return nil, domain.ErrInvalidTransactionType
	}
	if !domain.ValidCategory(input.Type, input.Category) {
		return nil, domain.ErrInvalidCategory
	}

	transaction := &domain.Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Date:        time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	next.Transactions = append([]*domain.Transaction{transaction}, next.Transactions...)
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	s.snap = next
	return transaction, nil
}

// DeleteTransaction removes the transaction with the given id. An unknown id
// is a no-op, not an error, and performs no write since nothing changed.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, t := range s.snap.Transactions {
		if t.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	next := s.snap.Clone()
	next.Transactions = append(next.Transactions[:index:index], next.Transactions[index+1:]...)
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	s.snap = next
	return nil
}

// Transactions returns the transaction collection, optionally filtered by a
// case-insensitive substring match on description or category. The returned
// slice is a copy.
func (s *LedgerService) Transactions(query string) []*domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*domain.Transaction, 0, len(s.snap.Transactions))
	for _, t := range s.snap.Transactions {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Description), query) &&
			!strings.Contains(strings.ToLower(t.Category), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// UpsertGoalInput holds the input for creating or editing a goal. A non-empty
// ID that matches an existing goal replaces that goal in place; any other ID
// creates a new goal.
type UpsertGoalInput struct {
	ID      string
	Name    string
	Target  decimal.Decimal
	Current decimal.Decimal
	Color   string
}

// UpsertGoal creates a goal or replaces an existing one, preserving its
// position. Current defaults to zero when negative; it is not clamped to the
// target here, only contributions clamp.
func (s *LedgerService) UpsertGoal(ctx context.Context, input UpsertGoalInput) (*domain.SavingGoal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrGoalNameRequired
	}
	if len(name) > domain.MaxGoalNameLength {
		return nil, domain.ErrGoalNameTooLong
	}
	if input.Target.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidTarget
	}
	current := input.Current
	if current.IsNegative() {
		current = decimal.Zero
	}

	goal := &domain.SavingGoal{
		Name:    name,
		Target:  input.Target,
		Current: current,
		Color:   domain.NormalizeGoalColor(input.Color),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	index := -1
	if input.ID != "" {
		for i, g := range next.Goals {
			if g.ID == input.ID {
				index = i
				break
			}
		}
	}
	if index >= 0 {
		goal.ID = input.ID
		next.Goals[index] = goal
	} else {
		goal.ID = uuid.NewString()
		next.Goals = append(next.Goals, goal)
	}

	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	s.snap = next
	return goal, nil
}

// DeleteGoal removes the goal with the given id. An unknown id is a no-op.
func (s *LedgerService) DeleteGoal(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, g := range s.snap.Goals {
		if g.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	next := s.snap.Clone()
	next.Goals = append(next.Goals[:index:index], next.Goals[index+1:]...)
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	s.snap = next
	return nil
}

// ContributeToGoal adds amount to the goal's saved total, clamped at the
// target. Contributions beyond the target are silently capped, never
// rejected.
func (s *LedgerService) ContributeToGoal(ctx context.Context, id string, amount decimal.Decimal) (*domain.SavingGoal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	var goal *domain.SavingGoal
	for _, g := range next.Goals {
		if g.ID == id {
			goal = g
			break
		}
	}
	if goal == nil {
		return nil, domain.ErrGoalNotFound
	}

	goal.Current = decimal.Min(goal.Target, goal.Current.Add(amount))

	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	s.snap = next
	return goal, nil
}

// Goals returns the goal collection. The returned goals are copies.
func (s *LedgerService) Goals() []*domain.SavingGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.SavingGoal, len(s.snap.Goals))
	for i, g := range s.snap.Goals {
		goal := *g
		out[i] = &goal
	}
	return out
}
