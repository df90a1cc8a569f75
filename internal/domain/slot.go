package domain

import (
	"time"

	"github.com/m04kA/table-buddy/pkg/types"
)

// Verdict результат проверки доступности одного слота
type Verdict struct {
	Date            time.Time
	Time            types.TimeString
	PartySize       int
	AvailableTables int
	TableIDs        []int64
}

// IsAvailable returns true if at least one table is free
func (v *Verdict) IsAvailable() bool {
	return v.AvailableTables > 0
}

// Slot конкретная рекомендация (дата, время) от поиска ближайшего слота
type Slot struct {
	Date time.Time
	Time types.TimeString
	// Verified false, если слот следующего дня возвращен как время открытия без проверки столов
	Verified bool
}

// IsSameDay returns true if the slot is on the given date
func (s *Slot) IsSameDay(date time.Time) bool {
	return SameDate(s.Date, date)
}
