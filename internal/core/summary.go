package core

// Summary holds the three totals derived from a filtered transaction set.
// Balance is always exactly Income minus Expense.
type Summary struct {
	Income  Money
	Expense Money
	Balance Money
}

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}
