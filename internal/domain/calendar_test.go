package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/pkg/types"
)

func mondayHours() *OperatingHours {
	return &OperatingHours{
		Day:    "monday",
		Lunch:  Window{Open: "11:30", Close: "14:30"},
		Dinner: Window{Open: "17:00", Close: "22:00"},
	}
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, "monday", WeekdayOf(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", WeekdayOf(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
}

func TestOperatingHours_IsOpenAt_BoundariesInclusive(t *testing.T) {
	h := mondayHours()

	for _, at := range []types.TimeString{"11:30", "14:30", "17:00", "22:00", "12:15", "19:45"} {
		assert.True(t, h.IsOpenAt(at), "expected open at %s", at)
	}
	for _, at := range []types.TimeString{"11:29", "14:31", "16:59", "22:01", "08:00"} {
		assert.False(t, h.IsOpenAt(at), "expected closed at %s", at)
	}
}

func TestOperatingCalendar_WindowsFor(t *testing.T) {
	cal := NewOperatingCalendar([]*OperatingHours{mondayHours()})

	h, ok := cal.WindowsFor("monday")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("17:00"), h.Dinner.Open)

	_, ok = cal.WindowsFor("sunday")
	assert.False(t, ok)
	assert.False(t, cal.IsOpenAt("sunday", "12:00"))
	assert.True(t, cal.IsOpenAt("monday", "12:00"))
}

func TestOperatingCalendar_DaysOrdered(t *testing.T) {
	sunday := mondayHours()
	sunday.Day = "sunday"
	wednesday := mondayHours()
	wednesday.Day = "wednesday"

	cal := NewOperatingCalendar([]*OperatingHours{sunday, mondayHours(), wednesday})

	days := cal.Days()
	require.Len(t, days, 3)
	assert.Equal(t, "monday", days[0].Day)
	assert.Equal(t, "wednesday", days[1].Day)
	assert.Equal(t, "sunday", days[2].Day)
}

func TestOperatingHours_Validate(t *testing.T) {
	assert.NoError(t, mondayHours().Validate())

	bad := mondayHours()
	bad.Lunch = Window{Open: "15:00", Close: "14:00"}
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	unknown := mondayHours()
	unknown.Day = "funday"
	assert.ErrorIs(t, unknown.Validate(), ErrValidation)

	equal := mondayHours()
	equal.Dinner = Window{Open: "17:00", Close: "17:00"}
	assert.NoError(t, equal.Validate())
}

func TestClosedError(t *testing.T) {
	allDay := &ClosedError{Weekday: "sunday"}
	assert.ErrorIs(t, allDay, ErrClosed)
	assert.True(t, allDay.IsClosedAllDay())

	outside := &ClosedError{Weekday: "monday", Time: "23:00", Hours: mondayHours()}
	assert.Contains(t, outside.Error(), "11:30-14:30")
	assert.Contains(t, outside.Error(), "17:00-22:00")
}
