package tables

import (
	"context"

	"github.com/m04kA/table-buddy/internal/service/tables/models"
)

type TableService interface {
	List(ctx context.Context) ([]*models.TableResponse, error)
	Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateTableStatusRequest) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
