package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  Type = "income"
	Expense Type = "expense"
)

type (
	// Type is the direction of a transaction. The sign of an amount is
	// carried by the type, never by the amount itself.
	Type string

	// Transaction is one recorded monetary event. ID and Date are assigned
	// at creation and never change afterwards.
	Transaction struct {
		ID       string
		Title    string
		Amount   Money
		Type     Type
		Category string
		Date     time.Time
	}

	// Draft holds the mutable fields of a transaction pending validation.
	// Both create and edit commands go through a Draft so the same rules
	// apply to each.
	Draft struct {
		Title    string
		Amount   Money
		Type     Type
		Category string
	}
)

var (
	ErrValidation = errors.New("invalid transaction")
	ErrNotFound   = errors.New("transaction not found")

	ErrEmptyTitle      = fmt.Errorf("%w: empty title", ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidType     = fmt.Errorf("%w: unknown transaction type", ErrValidation)
	ErrEmptyCategory   = fmt.Errorf("%w: empty category", ErrValidation)
	ErrUnknownCategory = fmt.Errorf("%w: category not in vocabulary", ErrValidation)
)

func (t Type) Valid() bool {
	switch t {
	case Income, Expense:
		return true
	}
	return false
}

// ParseType converts a wire-level type string to a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if len(d.Title) > 200 {
		return fmt.Errorf("%w: title too long (max 200 characters)", ErrValidation)
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrEmptyCategory
	}
	if !KnownCategory(d.Type, d.Category) {
		return ErrUnknownCategory
	}
	return nil
}
