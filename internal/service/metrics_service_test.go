package service

import (
	"testing"
	"time"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(kind domain.TransactionType, category string, amount int64, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:          category + date.Format("20060102"),
		Description: category,
		Amount:      decimal.NewFromInt(amount),
		Type:        kind,
		Category:    category,
		Date:        date,
	}
}

func TestTotals_Empty(t *testing.T) {
	metrics := NewMetricsService()

	totals := metrics.Totals(nil)

	assert.True(t, totals.Income.IsZero(), "income")
	assert.True(t, totals.Expense.IsZero(), "expense")
	assert.True(t, totals.Balance.IsZero(), "balance")
}

func TestTotals_MixedKinds(t *testing.T) {
	metrics := NewMetricsService()
	now := time.Now().UTC()

	totals := metrics.Totals([]*domain.Transaction{
		tx(domain.TransactionTypeIncome, "Salary", 100, now),
		tx(domain.TransactionTypeExpense, "Food", 40, now),
	})

	assert.Equal(t, "100", totals.Income.String())
	assert.Equal(t, "40", totals.Expense.String())
	assert.Equal(t, "60", totals.Balance.String())
}

func TestTotals_Pure(t *testing.T) {
	metrics := NewMetricsService()
	transactions := []*domain.Transaction{
		tx(domain.TransactionTypeIncome, "Salary", 100, time.Now().UTC()),
	}

	first := metrics.Totals(transactions)
	second := metrics.Totals(transactions)

	assert.Equal(t, first, second, "repeated calls over identical input must agree")
}

func TestDailySeries_LastDayBucket(t *testing.T) {
	metrics := NewMetricsService()
	reference := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	series := metrics.DailySeries([]*domain.Transaction{
		tx(domain.TransactionTypeExpense, "Food", 250, reference),
	}, reference, 7)

	require.Len(t, series.Labels, 7)
	require.Len(t, series.Expense, 7)

	assert.Equal(t, "2025-03-09", series.Labels[0], "window starts six days before the reference")
	assert.Equal(t, "2025-03-15", series.Labels[6], "window ends at the reference date")

	for i := 0; i < 6; i++ {
		assert.True(t, series.Expense[i].IsZero(), "day %s should be zero", series.Labels[i])
	}
	assert.Equal(t, "250", series.Expense[6].String())
	for i, v := range series.Income {
		assert.True(t, v.IsZero(), "income day %s should be zero", series.Labels[i])
	}
}

func TestDailySeries_SumsWithinADay(t *testing.T) {
	metrics := NewMetricsService()
	reference := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	midWindow := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	series := metrics.DailySeries([]*domain.Transaction{
		tx(domain.TransactionTypeExpense, "Food", 10, midWindow),
		tx(domain.TransactionTypeExpense, "Transport", 5, midWindow),
		tx(domain.TransactionTypeIncome, "Salary", 100, midWindow),
		// Outside the window, must be ignored
		tx(domain.TransactionTypeExpense, "Food", 999, reference.AddDate(0, 0, -10)),
		tx(domain.TransactionTypeExpense, "Food", 999, reference.AddDate(0, 0, 1)),
	}, reference, 7)

	assert.Equal(t, "15", series.Expense[3].String())
	assert.Equal(t, "100", series.Income[3].String())
}

func TestDailySeries_BucketsByUTCCalendarDay(t *testing.T) {
	metrics := NewMetricsService()
	reference := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	// 23:30 UTC-5 on the 14th is 04:30 UTC on the 15th
	offset := time.FixedZone("UTC-5", -5*3600)
	late := time.Date(2025, 3, 14, 23, 30, 0, 0, offset)

	series := metrics.DailySeries([]*domain.Transaction{
		tx(domain.TransactionTypeExpense, "Food", 20, late),
	}, reference, 7)

	assert.Equal(t, "20", series.Expense[6].String(), "bucketing follows the UTC calendar day")
	assert.True(t, series.Expense[5].IsZero())
}

func TestDailySeries_DefaultWindow(t *testing.T) {
	metrics := NewMetricsService()

	series := metrics.DailySeries(nil, time.Now().UTC(), 0)

	assert.Len(t, series.Labels, DefaultWindowDays)
}

func TestCategoryBreakdown(t *testing.T) {
	metrics := NewMetricsService()
	now := time.Now().UTC()

	transactions := []*domain.Transaction{
		tx(domain.TransactionTypeExpense, "Rent/Bills", 500, now),
		tx(domain.TransactionTypeExpense, "Rent/Bills", 300, now),
		tx(domain.TransactionTypeIncome, "Salary", 1000, now),
	}

	expenses := metrics.CategoryBreakdown(transactions, domain.TransactionTypeExpense)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Rent/Bills", expenses[0].Category)
	assert.Equal(t, "800", expenses[0].Amount.String())

	income := metrics.CategoryBreakdown(transactions, domain.TransactionTypeIncome)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Category)
	assert.Equal(t, "1000", income[0].Amount.String())
}

func TestCategoryBreakdown_FirstAppearanceOrder(t *testing.T) {
	metrics := NewMetricsService()
	now := time.Now().UTC()

	breakdown := metrics.CategoryBreakdown([]*domain.Transaction{
		tx(domain.TransactionTypeExpense, "Transport", 10, now),
		tx(domain.TransactionTypeExpense, "Food", 20, now),
		tx(domain.TransactionTypeExpense, "Transport", 5, now),
	}, domain.TransactionTypeExpense)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Transport", breakdown[0].Category, "order follows first appearance, not the vocabulary")
	assert.Equal(t, "15", breakdown[0].Amount.String())
	assert.Equal(t, "Food", breakdown[1].Category)
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	metrics := NewMetricsService()

	breakdown := metrics.CategoryBreakdown(nil, domain.TransactionTypeExpense)

	assert.Empty(t, breakdown)
}

func TestGoalProgress(t *testing.T) {
	metrics := NewMetricsService()

	tests := []struct {
		name    string
		target  int64
		current int64
		want    int
	}{
		{"empty goal", 1000, 0, 0},
		{"quarter", 1000, 250, 25},
		{"complete", 1000, 1000, 100},
		{"above target clamps to 100", 100, 250, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &domain.SavingGoal{
				Target:  decimal.NewFromInt(tt.target),
				Current: decimal.NewFromInt(tt.current),
			}
			assert.Equal(t, tt.want, metrics.GoalProgress(goal))
		})
	}
}

func TestGoalProgress_Rounds(t *testing.T) {
	metrics := NewMetricsService()

	goal := &domain.SavingGoal{
		Target:  decimal.NewFromInt(3),
		Current: decimal.NewFromInt(2),
	}
	assert.Equal(t, 67, metrics.GoalProgress(goal))
}

func TestGoalProgress_ZeroTargetGuard(t *testing.T) {
	metrics := NewMetricsService()

	goal := &domain.SavingGoal{
		Target:  decimal.Zero,
		Current: decimal.NewFromInt(50),
	}
	assert.Equal(t, 0, metrics.GoalProgress(goal), "zero target must not divide")
}
