package domain

import "github.com/shopspring/decimal"

// TotalsSummary holds the headline figures derived from the transaction
// collection: total income, total expense and their difference.
type TotalsSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// DailySeries is a fixed window of consecutive calendar days, oldest first.
// Labels are ISO dates; days without transactions carry zero, never a gap.
type DailySeries struct {
	Labels  []string          `json:"labels"`
	Income  []decimal.Decimal `json:"income"`
	Expense []decimal.Decimal `json:"expense"`
}

// CategoryTotal is one entry of a category breakdown. Breakdowns are ordered
// by first appearance among the matching transactions, so they are returned
// as a slice rather than a map.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
