package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/table-buddy/pkg/types"
)

var (
	// ErrValidation некорректные или отсутствующие входные данные
	ErrValidation = errors.New("validation error")

	// ErrPastDateTime запрошенное время уже прошло
	ErrPastDateTime = errors.New("requested date and time is in the past")

	// ErrClosed ресторан не работает в этот день или в это время
	ErrClosed = errors.New("restaurant is closed")

	// ErrNoCapacity ни один стол не вмещает компанию такого размера
	ErrNoCapacity = errors.New("no tables can accommodate the party")

	// ErrNoAvailability подходящие столы есть, но все заняты
	ErrNoAvailability = errors.New("no tables available")

	// ErrSlotNotFound поиск ближайшего слота не дал результата
	ErrSlotNotFound = errors.New("no available slots found")
)

// ClosedError детали отказа по расписанию.
// Hours == nil означает, что ресторан не работает весь день.
type ClosedError struct {
	Weekday string
	Time    types.TimeString
	Hours   *OperatingHours
}

// Error implements error
func (e *ClosedError) Error() string {
	if e.Hours == nil {
		return fmt.Sprintf("%v: closed on %s", ErrClosed, e.Weekday)
	}
	return fmt.Sprintf("%v: %s is outside operating hours on %s (lunch %s, dinner %s)",
		ErrClosed, e.Time, e.Weekday, e.Hours.Lunch, e.Hours.Dinner)
}

// Unwrap allows errors.Is(err, ErrClosed)
func (e *ClosedError) Unwrap() error {
	return ErrClosed
}

// IsClosedAllDay returns true if the weekday has no operating hours at all
func (e *ClosedError) IsClosedAllDay() bool {
	return e.Hours == nil
}

// Outcome метка результата операции для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrPastDateTime):
		return "past"
	case errors.Is(err, ErrClosed):
		return "closed"
	case errors.Is(err, ErrNoCapacity):
		return "no_capacity"
	case errors.Is(err, ErrNoAvailability):
		return "unavailable"
	case errors.Is(err, ErrSlotNotFound):
		return "not_found"
	default:
		return "error"
	}
}
