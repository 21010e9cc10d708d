package bot

import (
	"fmt"
	"strings"

	"tally/internal/core"
)

const historyLimit = 10

func renderReport(period core.Period, sum core.Summary, income, expense []core.CategoryAmount) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Report for the last %s\n\n", period)
	fmt.Fprintf(&sb, "💰 Income: %s\n", sum.Income)
	fmt.Fprintf(&sb, "💸 Expenses: %s\n", sum.Expense)
	fmt.Fprintf(&sb, "💵 Balance: %s\n", sum.Balance)

	if len(income) > 0 {
		sb.WriteString("\nIncome by category:\n")
		for _, ca := range income {
			fmt.Fprintf(&sb, "• %s: %s\n", ca.Name, ca.Amount)
		}
	}
	if len(expense) > 0 {
		sb.WriteString("\nExpenses by category:\n")
		for _, ca := range expense {
			fmt.Fprintf(&sb, "• %s: %s\n", ca.Name, ca.Amount)
		}
	}
	if len(income) == 0 && len(expense) == 0 {
		sb.WriteString("\nNo transactions in this window yet.")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderHistory(txs []core.Transaction) string {
	if len(txs) == 0 {
		return "No transactions yet. Use /add to record one."
	}

	var sb strings.Builder
	sb.WriteString("🧾 Recent transactions:\n\n")
	for _, tx := range txs {
		sign := "+"
		if tx.Type == core.Expense {
			sign = "-"
		}
		fmt.Fprintf(&sb, "%s %s%s %s (%s)\n",
			tx.Date.Format("02 Jan"), sign, tx.Amount, tx.Title, tx.Category)
	}
	return strings.TrimRight(sb.String(), "\n")
}
