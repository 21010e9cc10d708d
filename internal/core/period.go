package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

// Period selects a relative look-back window anchored to "now". Windows are
// fixed elapsed-time spans, not calendar periods: a month is always 30 days
// and a year 365, with no timezone, DST or month-length arithmetic.
type Period string

var ErrInvalidPeriod = fmt.Errorf("%w: unknown period", ErrValidation)

func (p Period) Valid() bool {
	switch p {
	case Day, Week, Month, Year:
		return true
	}
	return false
}

// Duration returns the look-back span for the period. Zero for an invalid
// period, which matches nothing.
func (p Period) Duration() time.Duration {
	switch p {
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	case Month:
		return 30 * 24 * time.Hour
	case Year:
		return 365 * 24 * time.Hour
	}
	return 0
}

func (p Period) String() string {
	return string(p)
}

// ParsePeriod converts a wire-level period string to a Period.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

// AllPeriods lists the valid periods from shortest to longest window.
func AllPeriods() []Period {
	return []Period{Day, Week, Month, Year}
}
