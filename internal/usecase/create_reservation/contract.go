package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
)

// TableRepository каталог столов
type TableRepository interface {
	GetWithCapacityAtLeast(ctx context.Context, partySize int) ([]*domain.Table, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetInWindow(ctx context.Context, filter domain.ReservationWindowFilter) ([]*domain.Reservation, error)
	LockTableForDate(ctx context.Context, tableID int64, date time.Time) error
}

// SettingsRepository расписание работы и время оборачиваемости
type SettingsRepository interface {
	GetAllOperatingHours(ctx context.Context) ([]*domain.OperatingHours, error)
	GetTurnaround(ctx context.Context) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчик созданных бронирований
type MetricsRecorder interface {
	RecordReservationCreated(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
