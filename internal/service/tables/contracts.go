package tables

import (
	"context"

	"github.com/m04kA/table-buddy/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetAll(ctx context.Context) ([]*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
