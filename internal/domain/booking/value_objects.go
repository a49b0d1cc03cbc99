package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod  = errors.New("start date must be before end date")
	ErrEndNotInFuture = errors.New("end date must be in the future")
	ErrStartInPast    = errors.New("start date cannot be in the past")
)

// Period is the half-open rental window requested by the booker.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the window against the supplied instant. Temporal rules
// never sample the wall clock themselves.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	if !end.After(now) {
		return Period{}, ErrEndNotInFuture
	}
	if start.Before(now) {
		return Period{}, ErrStartInPast
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a persisted window without re-validating it
// against the current instant.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}
