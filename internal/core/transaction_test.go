package core

import (
	"errors"
	"strings"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Title:    "lunch",
		Amount:   Money{Cents: 100},
		Type:     Expense,
		Category: "Groceries",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		d    Draft
		want error
	}{
		{"empty title", Draft{Title: "", Amount: Money{Cents: 1}, Type: Expense, Category: "Groceries"}, ErrEmptyTitle},
		{"blank title", Draft{Title: "   ", Amount: Money{Cents: 1}, Type: Expense, Category: "Groceries"}, ErrEmptyTitle},
		{"zero amount", Draft{Title: "a", Amount: Money{}, Type: Expense, Category: "Groceries"}, ErrInvalidAmount},
		{"negative amount", Draft{Title: "a", Amount: Money{Cents: -1}, Type: Expense, Category: "Groceries"}, ErrInvalidAmount},
		{"bad type", Draft{Title: "a", Amount: Money{Cents: 1}, Type: "transfer", Category: "Groceries"}, ErrInvalidType},
		{"empty category", Draft{Title: "a", Amount: Money{Cents: 1}, Type: Expense, Category: ""}, ErrEmptyCategory},
		{"category of other type", Draft{Title: "a", Amount: Money{Cents: 1}, Type: Income, Category: "Groceries"}, ErrUnknownCategory},
		{"made-up category", Draft{Title: "a", Amount: Money{Cents: 1}, Type: Expense, Category: "Yachts"}, ErrUnknownCategory},
		{"title too long", Draft{Title: strings.Repeat("x", 201), Amount: Money{Cents: 1}, Type: Expense, Category: "Groceries"}, ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("every validation failure must wrap ErrValidation, got %v", err)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	if got, err := ParseType(" Income "); err != nil || got != Income {
		t.Fatalf("expected income, got %q (err=%v)", got, err)
	}
	if got, err := ParseType("expense"); err != nil || got != Expense {
		t.Fatalf("expected expense, got %q (err=%v)", got, err)
	}
	if _, err := ParseType("transfer"); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	income := Categories(Income)
	expense := Categories(Expense)
	if len(income) != 5 || len(expense) != 7 {
		t.Fatalf("unexpected vocabulary sizes: income=%d expense=%d", len(income), len(expense))
	}

	// Both vocabularies carry "Other", scoped to their own type.
	if !KnownCategory(Income, "Other") || !KnownCategory(Expense, "Other") {
		t.Fatalf("expected Other in both vocabularies")
	}
	if KnownCategory(Income, "Groceries") {
		t.Fatalf("Groceries must not be an income category")
	}
	if KnownCategory(Expense, "Salary") {
		t.Fatalf("Salary must not be an expense category")
	}

	// Returned slices are copies; mutating them must not leak into the vocabulary.
	income[0] = "Hacked"
	if !KnownCategory(Income, "Salary") {
		t.Fatalf("vocabulary mutated through Categories result")
	}
}
