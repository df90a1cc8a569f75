package domain

import (
	"time"

	"github.com/m04kA/table-buddy/pkg/types"
)

// FreeTables возвращает столы, свободные в момент at по правилу истекшей занятости:
// стол свободен, если на нем нет бронирований из reservations, либо каждое из них
// началось не позже чем за turnaround до at.
// reservations должны быть заранее отфильтрованы по дате и блокирующим статусам.
func FreeTables(eligible []*Table, reservations []*Reservation, at types.TimeString, turnaround Turnaround) []*Table {
	byTable := groupByTable(reservations)

	free := make([]*Table, 0, len(eligible))
	for _, table := range eligible {
		busy := false
		for _, r := range byTable[table.ID] {
			if !turnaround.HasElapsed(r.Time, at) {
				busy = true
				break
			}
		}
		if !busy {
			free = append(free, table)
		}
	}
	return free
}

// ConflictFreeTables возвращает столы, на которых нет ни одного бронирования из reservations.
// Строгое правило создания бронирования: любое бронирование в окне turnaround блокирует стол.
func ConflictFreeTables(eligible []*Table, reservations []*Reservation) []*Table {
	byTable := groupByTable(reservations)

	free := make([]*Table, 0, len(eligible))
	for _, table := range eligible {
		if len(byTable[table.ID]) == 0 {
			free = append(free, table)
		}
	}
	return free
}

// InWindow оставляет только бронирования, попадающие в окно turnaround вокруг at
func InWindow(reservations []*Reservation, at types.TimeString, turnaround Turnaround) []*Reservation {
	from, to := turnaround.Window(at)

	result := make([]*Reservation, 0, len(reservations))
	for _, r := range reservations {
		if !r.Time.IsBefore(from) && !r.Time.IsAfter(to) {
			result = append(result, r)
		}
	}
	return result
}

// PreferTable moves the table with id hint to the front, keeping the rest in order
func PreferTable(tables []*Table, hint *int64) []*Table {
	if hint == nil {
		return tables
	}
	result := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t.ID == *hint {
			result = append(result, t)
		}
	}
	for _, t := range tables {
		if t.ID != *hint {
			result = append(result, t)
		}
	}
	return result
}

// IsPast returns true if date+at is strictly before the current minute of now.
// Совпадение с текущей минутой допускается.
func IsPast(date time.Time, at types.TimeString, now time.Time) bool {
	requested := at.On(DateOnly(date, now.Location()))
	currentMinute := now.Truncate(time.Minute)
	return requested.Before(currentMinute)
}

// DateOnly returns the calendar date of t at midnight in loc
func DateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDate returns true if both values refer to the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func groupByTable(reservations []*Reservation) map[int64][]*Reservation {
	byTable := make(map[int64][]*Reservation, len(reservations))
	for _, r := range reservations {
		byTable[r.TableID] = append(byTable[r.TableID], r)
	}
	return byTable
}
