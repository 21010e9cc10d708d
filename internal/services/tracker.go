// Package services wires the ledger engine into a single facade the
// presentation adapters talk to.
package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"tally/internal/core"
	"tally/internal/ledger"
)

// Tracker owns the ledger store and the active reporting period. Mutation
// commands go straight to the store; summary and breakdown reads recompute
// on demand by filtering the current snapshot through the active window and
// aggregating the result. No derived state is kept between calls.
//
// version counts mutations, so callers caching derived reads can key on it
// and never serve a result older than the last write.
type Tracker struct {
	store   *ledger.Store
	version atomic.Uint64

	mu     sync.RWMutex
	period core.Period
}

func NewTracker(store *ledger.Store) *Tracker {
	return &Tracker{
		store:  store,
		period: core.Month,
	}
}

func (t *Tracker) AddTransaction(ctx context.Context, d core.Draft) (core.Transaction, error) {
	tx, err := t.store.Add(d)
	if err != nil {
		return core.Transaction{}, err
	}
	t.version.Add(1)

	slog.InfoContext(ctx, "Transaction recorded",
		"transaction_id", tx.ID,
		"title", tx.Title,
		"amount_cents", tx.Amount.Cents,
		"type", tx.Type,
		"category", tx.Category)
	return tx, nil
}

func (t *Tracker) UpdateTransaction(ctx context.Context, id string, d core.Draft) (core.Transaction, error) {
	tx, err := t.store.Update(id, d)
	if err != nil {
		return core.Transaction{}, err
	}
	t.version.Add(1)

	slog.InfoContext(ctx, "Transaction updated",
		"transaction_id", tx.ID,
		"amount_cents", tx.Amount.Cents,
		"type", tx.Type,
		"category", tx.Category)
	return tx, nil
}

func (t *Tracker) RemoveTransaction(ctx context.Context, id string) error {
	if err := t.store.Remove(id); err != nil {
		return err
	}
	t.version.Add(1)

	slog.InfoContext(ctx, "Transaction removed", "transaction_id", id)
	return nil
}

// SetPeriod selects the active window for subsequent summary and breakdown
// reads.
func (t *Tracker) SetPeriod(ctx context.Context, p core.Period) error {
	if !p.Valid() {
		return core.ErrInvalidPeriod
	}

	t.mu.Lock()
	t.period = p
	t.mu.Unlock()

	slog.InfoContext(ctx, "Active period changed", "period", p)
	return nil
}

// Version returns the mutation counter. It increments on every successful
// add, update and remove.
func (t *Tracker) Version() uint64 {
	return t.version.Load()
}

// Period returns the active window selector.
func (t *Tracker) Period() core.Period {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.period
}

// Snapshot returns the full ledger, newest-first, for history display.
func (t *Tracker) Snapshot() []core.Transaction {
	return t.store.Snapshot()
}

// Recent returns up to limit of the newest transactions.
func (t *Tracker) Recent(limit int) []core.Transaction {
	snap := t.store.Snapshot()
	if limit >= 0 && len(snap) > limit {
		snap = snap[:limit]
	}
	return snap
}

// Summary computes the three totals over the active window.
func (t *Tracker) Summary(ctx context.Context) core.Summary {
	return ledger.Summarize(t.windowed())
}

// Breakdown computes per-category totals of the given type over the active
// window.
func (t *Tracker) Breakdown(ctx context.Context, typ core.Type) []core.CategoryAmount {
	return ledger.BreakdownByCategory(t.windowed(), typ)
}

func (t *Tracker) windowed() []core.Transaction {
	return ledger.FilterWindow(t.store.Snapshot(), time.Now(), t.Period())
}
