package find_next_slot

import (
	"context"

	"github.com/m04kA/table-buddy/internal/domain"
)

// TableRepository каталог столов
type TableRepository interface {
	GetWithCapacityAtLeast(ctx context.Context, partySize int) ([]*domain.Table, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetInWindow(ctx context.Context, filter domain.ReservationWindowFilter) ([]*domain.Reservation, error)
}

// SettingsRepository расписание работы и время оборачиваемости
type SettingsRepository interface {
	GetAllOperatingHours(ctx context.Context) ([]*domain.OperatingHours, error)
	GetTurnaround(ctx context.Context) (int, error)
}

// MetricsRecorder счетчик результатов поиска
type MetricsRecorder interface {
	RecordSlotSearch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
