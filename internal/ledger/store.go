// Package ledger implements the transaction aggregation engine: the
// authoritative store, the relative window filter and the pure aggregation
// functions that derive summaries and category breakdowns from it.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tally/internal/core"
)

// Store owns the authoritative, mutable transaction collection, ordered
// newest-first by insertion. A single mutex guards every method and
// Snapshot returns a point-in-time copy, so concurrent readers always see
// a consistent ledger within one pass.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add validates the draft, assigns a fresh ID and the current timestamp,
// and prepends the transaction to the ledger. The store is untouched when
// validation fails.
func (s *Store) Add(d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}

	tx := core.Transaction{
		ID:       uuid.New().String(),
		Title:    d.Title,
		Amount:   d.Amount,
		Type:     d.Type,
		Category: d.Category,
		Date:     s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Transaction{tx}, s.items...)
	return tx, nil
}

// Update replaces all mutable fields of the transaction with the draft's
// values, re-validating exactly as Add does. ID and Date are preserved.
func (s *Store) Update(id string, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Title = d.Title
		s.items[i].Amount = d.Amount
		s.items[i].Type = d.Type
		s.items[i].Category = d.Category
		return s.items[i], nil
	}
	return core.Transaction{}, core.ErrNotFound
}

// Remove deletes the transaction with the given id. Removing an absent id
// is an error, not a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

// Snapshot returns a copy of the current ledger, newest-first. Callers may
// hold it across later mutations without seeing them.
func (s *Store) Snapshot() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of transactions in the ledger.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
