package check_availability

import (
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
)

// Options настройки проверки доступности
type Options struct {
	DefaultTurnaround int            // используется, если в настройках ресторана оборачиваемость не задана
	PendingBlocks     bool           // ожидающие бронирования тоже занимают стол
	Location          *time.Location // часовой пояс ресторана для вычисления "сейчас"
}

// Request модель запроса на проверку доступности
type Request struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	PartySize int
}

// Response результат проверки доступности
type Response = domain.Verdict

