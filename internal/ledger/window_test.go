package ledger

import (
	"testing"
	"time"

	"tally/internal/core"
)

func txAt(id string, date time.Time) core.Transaction {
	return core.Transaction{
		ID:       id,
		Title:    id,
		Amount:   core.Money{Cents: 100},
		Type:     core.Expense,
		Category: "Groceries",
		Date:     date,
	}
}

func TestWithin(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		p    core.Period
		want bool
	}{
		{"just now", now, core.Day, true},
		{"23h ago in day", now.Add(-23 * time.Hour), core.Day, true},
		{"exactly 24h ago in day", now.Add(-24 * time.Hour), core.Day, true}, // boundary is inclusive
		{"25h ago out of day", now.Add(-25 * time.Hour), core.Day, false},
		{"6 days ago in week", now.AddDate(0, 0, -6), core.Week, true},
		{"8 days ago out of week", now.AddDate(0, 0, -8), core.Week, false},
		{"29 days ago in month", now.AddDate(0, 0, -29), core.Month, true},
		{"31 days ago out of month", now.AddDate(0, 0, -31), core.Month, false},
		{"40 days ago out of month", now.AddDate(0, 0, -40), core.Month, false},
		{"40 days ago in year", now.AddDate(0, 0, -40), core.Year, true},
		{"366 days ago out of year", now.AddDate(0, 0, -366), core.Year, false},
		// Future dates are deliberately in-window for every period.
		{"tomorrow in day", now.Add(24 * time.Hour), core.Day, true},
		{"next year in day", now.AddDate(1, 0, 0), core.Day, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Within(txAt("x", tc.date), now, tc.p); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterWindowStable(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		txAt("a", now.Add(-time.Hour)),
		txAt("b", now.AddDate(0, 0, -10)), // outside day, inside month
		txAt("c", now.Add(-2*time.Hour)),
	}

	got := FilterWindow(txs, now, core.Day)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("filter must keep relative order: %+v", got)
	}
}

func TestWindowMonotonicity(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	// Records scattered from hours to years back, plus one future-dated.
	txs := []core.Transaction{
		txAt("h1", now.Add(-time.Hour)),
		txAt("d3", now.AddDate(0, 0, -3)),
		txAt("d20", now.AddDate(0, 0, -20)),
		txAt("d40", now.AddDate(0, 0, -40)),
		txAt("d200", now.AddDate(0, 0, -200)),
		txAt("d400", now.AddDate(0, 0, -400)),
		txAt("future", now.AddDate(0, 1, 0)),
	}

	inWindow := make(map[core.Period]map[string]bool)
	for _, p := range core.AllPeriods() {
		ids := make(map[string]bool)
		for _, tx := range FilterWindow(txs, now, p) {
			ids[tx.ID] = true
		}
		inWindow[p] = ids
	}

	// Every shorter window's set is a subset of the next longer one.
	ps := core.AllPeriods()
	for i := 1; i < len(ps); i++ {
		shorter, longer := ps[i-1], ps[i]
		for id := range inWindow[shorter] {
			if !inWindow[longer][id] {
				t.Fatalf("%s window contains %s but %s does not", shorter, id, longer)
			}
		}
	}

	if !inWindow[core.Year]["d40"] || inWindow[core.Month]["d40"] {
		t.Fatalf("40-day-old record must be in year but not month")
	}
	for _, p := range ps {
		if !inWindow[p]["future"] {
			t.Fatalf("future-dated record missing from %s window", p)
		}
	}
}
