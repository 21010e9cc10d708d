package ledger

import "tally/internal/core"

// Summarize computes the income, expense and balance totals for a
// transaction set. Accumulation happens in exact cents; the balance is
// income minus expense by construction. An empty set yields an all-zero
// summary.
func Summarize(txs []core.Transaction) core.Summary {
	var income, expense int64
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			income += tx.Amount.Cents
		case core.Expense:
			expense += tx.Amount.Cents
		}
	}
	return core.Summary{
		Income:  core.Money{Cents: income},
		Expense: core.Money{Cents: expense},
		Balance: core.Money{Cents: income - expense},
	}
}

// BreakdownByCategory sums amounts per category over transactions of the
// given type. Categories appear in first-seen order, which keeps the output
// deterministic for a fixed input; categories with no matching transaction
// are absent. Category membership is enforced upstream by Draft validation
// and is not re-checked here.
func BreakdownByCategory(txs []core.Transaction, t core.Type) []core.CategoryAmount {
	index := make(map[string]int)
	out := make([]core.CategoryAmount, 0)
	for _, tx := range txs {
		if tx.Type != t {
			continue
		}
		i, seen := index[tx.Category]
		if !seen {
			i = len(out)
			index[tx.Category] = i
			out = append(out, core.CategoryAmount{Name: tx.Category})
		}
		out[i].Amount.Cents += tx.Amount.Cents
	}
	return out
}
