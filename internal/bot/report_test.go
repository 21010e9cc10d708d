package bot

import (
	"strings"
	"testing"
	"time"

	"tally/internal/core"
)

func TestRenderReport(t *testing.T) {
	sum := core.Summary{
		Income:  core.Money{Cents: 5000000},
		Expense: core.Money{Cents: 1200000},
		Balance: core.Money{Cents: 3800000},
	}
	expense := []core.CategoryAmount{
		{Name: "Groceries", Amount: core.Money{Cents: 1200000}},
	}

	out := renderReport(core.Month, sum, nil, expense)

	for _, want := range []string{"month", "50000.00", "12000.00", "38000.00", "Groceries"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Income by category") {
		t.Error("empty income breakdown must be omitted")
	}
}

func TestRenderReportEmpty(t *testing.T) {
	out := renderReport(core.Week, core.Summary{}, nil, nil)
	if !strings.Contains(out, "No transactions") {
		t.Errorf("expected empty-window hint:\n%s", out)
	}
}

func TestRenderHistory(t *testing.T) {
	txs := []core.Transaction{
		{
			Title:    "Groceries run",
			Amount:   core.Money{Cents: 2550},
			Type:     core.Expense,
			Category: "Groceries",
			Date:     time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Salary",
			Amount:   core.Money{Cents: 5000000},
			Type:     core.Income,
			Category: "Salary",
			Date:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	out := renderHistory(txs)
	if !strings.Contains(out, "-25.50") {
		t.Errorf("expenses render with a minus sign:\n%s", out)
	}
	if !strings.Contains(out, "+50000.00") {
		t.Errorf("income renders with a plus sign:\n%s", out)
	}
	if !strings.Contains(out, "14 Mar") {
		t.Errorf("dates render as day and month:\n%s", out)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	if out := renderHistory(nil); !strings.Contains(out, "/add") {
		t.Errorf("empty history should point at /add:\n%s", out)
	}
}
