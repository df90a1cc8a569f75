package turnaround

import (
	"context"

	"github.com/m04kA/table-buddy/internal/service/settings/models"
)

type SettingsService interface {
	GetTurnaround(ctx context.Context) (*models.TurnaroundResponse, error)
	SetTurnaround(ctx context.Context, req *models.TurnaroundRequest) (*models.TurnaroundResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
