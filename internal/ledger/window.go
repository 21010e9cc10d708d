package ledger

import (
	"time"

	"tally/internal/core"
)

// Within reports whether tx falls inside the look-back window of the given
// period, anchored at now. A transaction qualifies when no more than the
// period's duration has elapsed since its date. Future-dated transactions
// always qualify: their elapsed time is negative, which never exceeds the
// threshold.
func Within(tx core.Transaction, now time.Time, p core.Period) bool {
	return now.Sub(tx.Date) <= p.Duration()
}

// FilterWindow returns the transactions inside the window, preserving their
// relative order.
func FilterWindow(txs []core.Transaction, now time.Time, p core.Period) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if Within(tx, now, p) {
			out = append(out, tx)
		}
	}
	return out
}
