package find_next_slot

import (
	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/types"
)

// dayWalk перебор времени внутри одного рабочего дня
type dayWalk struct {
	hours        *domain.OperatingHours
	eligible     []*domain.Table
	reservations []*domain.Reservation // блокирующие бронирования всего дня
	turnaround   domain.Turnaround
	step         int
}

// firstFree возвращает первое время не раньше from, когда свободен хотя бы один подходящий стол.
// Перерыв между обедом и ужином пропускается целиком, перебор заканчивается после закрытия ужина.
func (w *dayWalk) firstFree(from types.TimeString) (types.TimeString, bool) {
	candidate := from

	for {
		if candidate.IsBefore(w.hours.Lunch.Open) {
			candidate = w.hours.Lunch.Open
		}
		if candidate.IsAfter(w.hours.Lunch.Close) && candidate.IsBefore(w.hours.Dinner.Open) {
			candidate = w.hours.Dinner.Open
		}
		if candidate.IsAfter(w.hours.Dinner.Close) && candidate.IsAfter(w.hours.Lunch.Close) {
			return "", false
		}

		if w.hours.IsOpenAt(candidate) && w.isFree(candidate) {
			return candidate, true
		}

		next, err := candidate.AddMinutes(w.step)
		if err != nil {
			// конец суток
			return "", false
		}
		candidate = next
	}
}

func (w *dayWalk) isFree(at types.TimeString) bool {
	windowed := domain.InWindow(w.reservations, at, w.turnaround)
	return len(domain.FreeTables(w.eligible, windowed, at, w.turnaround)) > 0
}
