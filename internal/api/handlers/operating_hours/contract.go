package operating_hours

import (
	"context"

	"github.com/m04kA/table-buddy/internal/service/settings/models"
)

type SettingsService interface {
	GetCalendar(ctx context.Context) (*models.CalendarResponse, error)
	UpsertHours(ctx context.Context, day string, req *models.OperatingHoursRequest) (*models.OperatingHoursResponse, error)
	DeleteHours(ctx context.Context, day string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
