package core

// Category vocabularies are fixed configuration data, one list per
// transaction type. A transaction's category must belong to the vocabulary
// of its current type; changing the type means re-choosing the category
// from the other list.
var (
	incomeCategories = []string{
		"Salary",
		"Freelance",
		"Investments",
		"Gifts",
		"Other",
	}

	expenseCategories = []string{
		"Groceries",
		"Transport",
		"Housing",
		"Entertainment",
		"Health",
		"Education",
		"Other",
	}
)

// Categories returns the allowed category names for a type. Callers get a
// copy; the vocabularies themselves are immutable.
func Categories(t Type) []string {
	var src []string
	switch t {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// KnownCategory reports whether name belongs to the vocabulary of t.
func KnownCategory(t Type, name string) bool {
	var src []string
	switch t {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	default:
		return false
	}
	for _, c := range src {
		if c == name {
			return true
		}
	}
	return false
}
