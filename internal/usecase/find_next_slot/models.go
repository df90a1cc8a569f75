package find_next_slot

import (
	"github.com/m04kA/table-buddy/internal/domain"
)

// Options настройки поиска ближайшего слота
type Options struct {
	DefaultTurnaround int
	PendingBlocks     bool
	StepMinutes       int  // шаг перебора времени, по умолчанию 15 минут
	ChainNextDay      bool // продолжать полноценный поиск в следующих днях
	MaxLookaheadDays  int  // сколько дней вперед смотреть при ChainNextDay
}

// Request модель запроса на поиск ближайшего свободного времени
type Request struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	PartySize int
}

// Response найденный слот
type Response = domain.Slot
