package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"tally/internal/core"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	snap := s.tracker.Snapshot()
	total := len(snap)
	if limit := queryLimit(r, -1); limit >= 0 && limit < len(snap) {
		snap = snap[:limit]
	}

	out := transactionListResponse{
		Transactions: make([]transactionResponse, 0, len(snap)),
		Total:        total,
	}
	for _, tx := range snap {
		out.Transactions = append(out.Transactions, toTransactionResponse(tx))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeTransactionRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tx, err := s.tracker.AddTransaction(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateReadModels()
	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	draft, err := decodeTransactionRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tx, err := s.tracker.UpdateTransaction(r.Context(), id, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateReadModels()
	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.tracker.RemoveTransaction(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateReadModels()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	period := s.tracker.Period()
	key := "summary:" + period.String() + ":" + strconv.FormatUint(s.tracker.Version(), 10)

	if sum, ok := s.summaryCache.Get(key); ok {
		writeJSON(w, http.StatusOK, toSummaryResponse(period, sum))
		return
	}

	sum := s.tracker.Summary(r.Context())
	s.summaryCache.Set(key, sum)
	writeJSON(w, http.StatusOK, toSummaryResponse(period, sum))
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	typ, err := core.ParseType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	period := s.tracker.Period()
	key := "breakdown:" + period.String() + ":" + string(typ) + ":" + strconv.FormatUint(s.tracker.Version(), 10)

	if cats, ok := s.breakdownCache.Get(key); ok {
		writeJSON(w, http.StatusOK, toBreakdownResponse(period, typ, cats))
		return
	}

	cats := s.tracker.Breakdown(r.Context(), typ)
	s.breakdownCache.Set(key, cats)
	writeJSON(w, http.StatusOK, toBreakdownResponse(period, typ, cats))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	typ, err := core.ParseType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type":       string(typ),
		"categories": core.Categories(typ),
	})
}

func (s *Server) handleGetPeriod(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, periodResponse{Period: s.tracker.Period().String()})
}

func (s *Server) handleSetPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := decodePeriodRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.tracker.SetPeriod(r.Context(), period); err != nil {
		writeError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "Period selected", "period", period)
	writeJSON(w, http.StatusOK, periodResponse{Period: period.String()})
}
