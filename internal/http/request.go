package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"tally/internal/core"
)

// flexString decodes a JSON string or number into a string, so clients may
// send `"amount": "12.50"` as well as `"amount": 12.50`.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	return fmt.Errorf("value must be a string or number: %s", data)
}

// transactionRequest is the wire-level candidate for create and update.
// The amount stays a string until core.ParseAmount validates it; nothing
// loosely typed reaches the store.
type transactionRequest struct {
	Title    string     `json:"title"`
	Amount   flexString `json:"amount"`
	Type     string     `json:"type"`
	Category string     `json:"category"`
}

func decodeTransactionRequest(r *http.Request) (core.Draft, error) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return core.Draft{}, fmt.Errorf("%w: malformed request body", core.ErrValidation)
	}
	return req.draft()
}

func (req transactionRequest) draft() (core.Draft, error) {
	amount, err := core.ParseAmount(string(req.Amount))
	if err != nil {
		return core.Draft{}, err
	}
	typ, err := core.ParseType(req.Type)
	if err != nil {
		return core.Draft{}, err
	}
	return core.Draft{
		Title:    strings.TrimSpace(req.Title),
		Amount:   amount,
		Type:     typ,
		Category: strings.TrimSpace(req.Category),
	}, nil
}

type periodRequest struct {
	Period string `json:"period"`
}

func decodePeriodRequest(r *http.Request) (core.Period, error) {
	var req periodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", fmt.Errorf("%w: malformed request body", core.ErrValidation)
	}
	return core.ParsePeriod(req.Period)
}

// queryLimit parses an optional positive "limit" query parameter, returning
// def when absent or unusable.
func queryLimit(r *http.Request, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get("limit"))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
