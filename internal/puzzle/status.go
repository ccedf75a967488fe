package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a region status change would move
// backwards or skip a stage.
var ErrInvalidTransition = errors.New("puzzle: invalid status transition")

// ErrUnknownRegion is returned for a region id beyond the status table.
var ErrUnknownRegion = errors.New("puzzle: unknown region")

// Status is the lifecycle stage of a region.
type Status uint8

const (
	Virgin Status = iota
	Exhausted
	Complete
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Virgin:
		return "virgin"
	case Exhausted:
		return "exhausted"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Resolved reports whether the region has left the Virgin stage.
func (s Status) Resolved() bool {
	return s != Virgin
}

// canTransition allows only single forward steps.
func canTransition(from, to Status) bool {
	return to == from+1 && to <= Complete
}
