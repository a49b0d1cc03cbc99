package booking

import (
	"errors"
	"strings"
	"time"
)

// State is the query-time classification used by listing endpoints. It is
// distinct from Status: CURRENT/FUTURE/PAST are computed from the time window
// alone, WAITING/REJECTED from the persisted status alone.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
	StatePast     State = "PAST"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = errors.New("unknown booking state")

// ParseState matches case-insensitively; an empty string means ALL.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	switch State(strings.ToUpper(s)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StateFuture:
		return StateFuture, nil
	case StatePast:
		return StatePast, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", ErrUnknownState
	}
}

func (s State) String() string {
	return string(s)
}

// Matches reports whether a booking with the given window and status falls
// under this filter at the instant now. CURRENT is inclusive on both ends.
func (s State) Matches(start, end time.Time, status Status, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return !start.After(now) && !end.Before(now)
	case StateFuture:
		return start.After(now)
	case StatePast:
		return end.Before(now)
	case StateWaiting:
		return status == StatusWaiting
	case StateRejected:
		return status == StatusRejected
	default:
		return false
	}
}
