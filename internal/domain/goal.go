package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingGoal is a named saving target. Current grows through contributions
// and is clamped at Target; it is never required to stay below Target as a
// stored invariant (an edited goal may lower its target below the saved
// amount).
type SavingGoal struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Target  decimal.Decimal `json:"target"`
	Current decimal.Decimal `json:"current"`
	Color   string          `json:"color"`
}

// GoalPalette is the fixed set of color tags available for goals. The color
// carries no behavior; it only groups goals visually on the client.
var GoalPalette = []string{
	"#10b981",
	"#3b82f6",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
}

// NormalizeGoalColor maps any color value onto the palette. Unknown or empty
// values fall back to the first palette entry rather than being rejected,
// since the color has no behavioral effect.
func NormalizeGoalColor(color string) string {
	for _, c := range GoalPalette {
		if c == color {
			return c
		}
	}
	return GoalPalette[0]
}

// SeedGoals returns the default goals used when no persisted goals exist.
// This is a bootstrap default only; deleting them is allowed and they are
// never re-created once a goals collection has been persisted.
func SeedGoals() []*SavingGoal {
	return []*SavingGoal{
		{
			ID:      uuid.NewString(),
			Name:    "Emergency Fund",
			Target:  decimal.NewFromInt(1000),
			Current: decimal.NewFromInt(250),
			Color:   GoalPalette[0],
		},
		{
			ID:      uuid.NewString(),
			Name:    "New Car",
			Target:  decimal.NewFromInt(5000),
			Current: decimal.NewFromInt(750),
			Color:   GoalPalette[1],
		},
	}
}
