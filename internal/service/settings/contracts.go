package settings

import (
	"context"

	"github.com/m04kA/table-buddy/internal/domain"
)

// SettingsRepository интерфейс репозитория расписания и настроек
type SettingsRepository interface {
	GetAllOperatingHours(ctx context.Context) ([]*domain.OperatingHours, error)
	UpsertOperatingHours(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error)
	DeleteOperatingHours(ctx context.Context, day string) error
	GetTurnaround(ctx context.Context) (int, error)
	SetTurnaround(ctx context.Context, minutes int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
