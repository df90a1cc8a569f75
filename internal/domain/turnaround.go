package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/table-buddy/pkg/types"
)

// Turnaround время в минутах, в течение которого стол считается занятым после начала бронирования
type Turnaround int

// NewTurnaround validates minutes and returns the policy
func NewTurnaround(minutes int) (Turnaround, error) {
	if minutes < MinTurnaroundMinutes || minutes > MaxTurnaroundMinutes {
		return 0, fmt.Errorf("%w: turnaround must be between %d and %d minutes",
			ErrValidation, MinTurnaroundMinutes, MaxTurnaroundMinutes)
	}
	return Turnaround(minutes), nil
}

// Minutes returns the turnaround in minutes
func (t Turnaround) Minutes() int {
	return int(t)
}

// Duration returns the turnaround as time.Duration
func (t Turnaround) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

// Window returns the query interval [at - turnaround, at + turnaround] clamped to the same day
func (t Turnaround) Window(at types.TimeString) (from, to types.TimeString) {
	return at.AddMinutesClamped(-t.Minutes()), at.AddMinutesClamped(t.Minutes())
}

// HasElapsed returns true if a reservation starting at start no longer occupies its table at at,
// т.е. start + turnaround <= at
func (t Turnaround) HasElapsed(start, at types.TimeString) bool {
	return start.Minutes()+t.Minutes() <= at.Minutes()
}
