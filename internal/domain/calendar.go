package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/table-buddy/pkg/types"
)

// Weekdays названия дней недели в порядке, начиная с понедельника
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayOf returns the lowercase english weekday name of the date
func WeekdayOf(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// IsWeekday returns true if the name is one of Weekdays
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// Window непрерывный интервал обслуживания [Open, Close]
type Window struct {
	Open  types.TimeString
	Close types.TimeString
}

// Contains returns true if t is inside the window, boundaries included
func (w Window) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Open) && !t.IsAfter(w.Close)
}

// Validate checks that both bounds are valid and open <= close
func (w Window) Validate() error {
	if err := w.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrValidation, err)
	}
	if err := w.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrValidation, err)
	}
	if w.Open.IsAfter(w.Close) {
		return fmt.Errorf("%w: open time %s is after close time %s", ErrValidation, w.Open, w.Close)
	}
	return nil
}

// String formats the window as "HH:MM-HH:MM"
func (w Window) String() string {
	return fmt.Sprintf("%s-%s", w.Open, w.Close)
}

// OperatingHours часы работы ресторана в один день недели: обед и ужин
type OperatingHours struct {
	Day    string // monday ... sunday
	Lunch  Window
	Dinner Window

	UpdatedAt time.Time
}

// Validate checks the weekday name and both windows
func (h *OperatingHours) Validate() error {
	if !IsWeekday(h.Day) {
		return fmt.Errorf("%w: unknown weekday %q", ErrValidation, h.Day)
	}
	if err := h.Lunch.Validate(); err != nil {
		return fmt.Errorf("lunch: %w", err)
	}
	if err := h.Dinner.Validate(); err != nil {
		return fmt.Errorf("dinner: %w", err)
	}
	return nil
}

// IsOpenAt returns true if t falls within lunch or dinner, boundaries included
func (h *OperatingHours) IsOpenAt(t types.TimeString) bool {
	return h.Lunch.Contains(t) || h.Dinner.Contains(t)
}

// OperatingCalendar недельное расписание. Отсутствие дня означает, что ресторан в этот день закрыт.
type OperatingCalendar struct {
	days map[string]*OperatingHours
}

// NewOperatingCalendar builds a calendar from per-day records
func NewOperatingCalendar(hours []*OperatingHours) *OperatingCalendar {
	days := make(map[string]*OperatingHours, len(hours))
	for _, h := range hours {
		days[h.Day] = h
	}
	return &OperatingCalendar{days: days}
}

// WindowsFor returns the hours of the weekday, ok == false if the restaurant is not operating
func (c *OperatingCalendar) WindowsFor(weekday string) (*OperatingHours, bool) {
	h, ok := c.days[weekday]
	return h, ok
}

// WindowsOn returns the hours of the weekday of the date
func (c *OperatingCalendar) WindowsOn(date time.Time) (*OperatingHours, bool) {
	return c.WindowsFor(WeekdayOf(date))
}

// IsOpenAt returns true if the restaurant operates on weekday at t
func (c *OperatingCalendar) IsOpenAt(weekday string, t types.TimeString) bool {
	h, ok := c.WindowsFor(weekday)
	if !ok {
		return false
	}
	return h.IsOpenAt(t)
}

// Days returns the configured days ordered from monday to sunday
func (c *OperatingCalendar) Days() []*OperatingHours {
	result := make([]*OperatingHours, 0, len(c.days))
	for _, d := range Weekdays {
		if h, ok := c.days[d]; ok {
			result = append(result, h)
		}
	}
	return result
}
