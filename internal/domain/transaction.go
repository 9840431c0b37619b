package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense record. Transactions are
// immutable after creation; the only lifecycle operations are create and
// delete-by-id.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// categoriesByType is the fixed category vocabulary, keyed by transaction
// type. Income and expense categories are disjoint sets; every mutating
// operation validates against this table.
var categoriesByType = map[TransactionType][]string{
	TransactionTypeIncome:  {"Salary", "Freelance", "Investments", "Gifts", "Other"},
	TransactionTypeExpense: {"Food", "Rent/Bills", "Transport", "Entertainment", "Shopping", "Health", "Other"},
}

// CategoriesFor returns the allowed categories for a transaction type.
// The returned slice is a copy.
func CategoriesFor(t TransactionType) []string {
	categories, ok := categoriesByType[t]
	if !ok {
		return nil
	}
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether category belongs to the vocabulary for the
// given transaction type.
func ValidCategory(t TransactionType, category string) bool {
	for _, c := range categoriesByType[t] {
		if c == category {
			return true
		}
	}
	return false
}

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxGoalNameLength    = 255
)
