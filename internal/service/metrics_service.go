package service

import (
	"time"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultWindowDays is the daily series window used when the caller does not
// ask for a specific one.
const DefaultWindowDays = 7

// dayLayout fixes the calendar-day convention for bucketing and labels:
// transactions are grouped by their UTC calendar date.
const dayLayout = "2006-01-02"

// MetricsService derives aggregate figures from a snapshot of the ledger.
// All methods are pure: they read the given records and touch no storage, so
// identical input always yields identical output.
type MetricsService struct{}

// NewMetricsService creates a new MetricsService
func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// Totals sums income and expense amounts and their difference. An empty
// collection yields all zeros.
func (s *MetricsService) Totals(transactions []*domain.Transaction) domain.TotalsSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case domain.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return domain.TotalsSummary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// DailySeries buckets income and expense amounts into windowDays consecutive
// UTC calendar days ending at reference inclusive, oldest first. Days with
// no transactions hold zero. A non-positive windowDays falls back to the
// default window.
func (s *MetricsService) DailySeries(transactions []*domain.Transaction, reference time.Time, windowDays int) *domain.DailySeries {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	ref := reference.UTC()
	first := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(windowDays - 1))

	series := &domain.DailySeries{
		Labels:  make([]string, windowDays),
		Income:  make([]decimal.Decimal, windowDays),
		Expense: make([]decimal.Decimal, windowDays),
	}
	indexByDay := make(map[string]int, windowDays)
	for i := 0; i < windowDays; i++ {
		label := first.AddDate(0, 0, i).Format(dayLayout)
		series.Labels[i] = label
		series.Income[i] = decimal.Zero
		series.Expense[i] = decimal.Zero
		indexByDay[label] = i
	}

	for _, t := range transactions {
		i, ok := indexByDay[t.Date.UTC().Format(dayLayout)]
		if !ok {
			continue
		}
		switch t.Type {
		case domain.TransactionTypeIncome:
			series.Income[i] = series.Income[i].Add(t.Amount)
		case domain.TransactionTypeExpense:
			series.Expense[i] = series.Expense[i].Add(t.Amount)
		}
	}
	return series
}

// CategoryBreakdown sums amounts per category for the given transaction
// type. The result preserves first-appearance order among the matching
// transactions.
func (s *MetricsService) CategoryBreakdown(transactions []*domain.Transaction, kind domain.TransactionType) []domain.CategoryTotal {
	totals := []domain.CategoryTotal{}
	indexByCategory := make(map[string]int)
	for _, t := range transactions {
		if t.Type != kind {
			continue
		}
		i, ok := indexByCategory[t.Category]
		if !ok {
			i = len(totals)
			indexByCategory[t.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}
	return totals
}

// GoalProgress returns the goal's completion as a whole percentage, clamped
// to [0, 100]. A zero target cannot pass goal validation, but is still
// guarded here and reported as 0 instead of dividing by zero.
func (s *MetricsService) GoalProgress(goal *domain.SavingGoal) int {
	if goal.Target.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	percent := goal.Current.Div(goal.Target).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return int(percent)
}
