package store

import (
	"fmt"
	"time"
)

// Outcome is the recorded result of one operation on one unit.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeFailed
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ParseOutcome converts a string to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "applied":
		return OutcomeApplied, nil
	case "failed":
		return OutcomeFailed, nil
	case "skipped":
		return OutcomeSkipped, nil
	default:
		return 0, fmt.Errorf("unknown outcome %q", s)
	}
}

// UnitEvent is one journal entry: an operation applied to a unit during
// one process invocation.
type UnitEvent struct {
	ID           int64
	InvocationID string
	Unit         string
	Operation    string
	Outcome      Outcome
	Detail       string
	Timestamp    time.Time
}
