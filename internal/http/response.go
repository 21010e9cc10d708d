package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tally/internal/core"
)

type transactionResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

type transactionListResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

type summaryResponse struct {
	Period       string `json:"period"`
	IncomeCents  int64  `json:"income_cents"`
	Income       string `json:"income"`
	ExpenseCents int64  `json:"expense_cents"`
	Expense      string `json:"expense"`
	BalanceCents int64  `json:"balance_cents"`
	Balance      string `json:"balance"`
}

type categoryAmountResponse struct {
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
}

type breakdownResponse struct {
	Period     string                   `json:"period"`
	Type       string                   `json:"type"`
	Categories []categoryAmountResponse `json:"categories"`
}

type periodResponse struct {
	Period string `json:"period"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toTransactionResponse(tx core.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Title:       tx.Title,
		AmountCents: tx.Amount.Cents,
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Date:        tx.Date,
	}
}

func toSummaryResponse(p core.Period, sum core.Summary) summaryResponse {
	return summaryResponse{
		Period:       p.String(),
		IncomeCents:  sum.Income.Cents,
		Income:       sum.Income.String(),
		ExpenseCents: sum.Expense.Cents,
		Expense:      sum.Expense.String(),
		BalanceCents: sum.Balance.Cents,
		Balance:      sum.Balance.String(),
	}
}

func toBreakdownResponse(p core.Period, t core.Type, cats []core.CategoryAmount) breakdownResponse {
	out := breakdownResponse{
		Period:     p.String(),
		Type:       string(t),
		Categories: make([]categoryAmountResponse, 0, len(cats)),
	}
	for _, ca := range cats {
		out.Categories = append(out.Categories, categoryAmountResponse{
			Category:    ca.Name,
			AmountCents: ca.Amount.Cents,
			Amount:      ca.Amount.String(),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encode response failed", "error", err)
	}
}

// writeError maps engine errors onto the API's status codes: validation
// failures are 422, unknown ids 404, everything else 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "Unexpected handler error", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
