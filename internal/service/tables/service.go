package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/table-buddy/internal/domain"
	tableRepo "github.com/m04kA/table-buddy/internal/infra/storage/table"
	"github.com/m04kA/table-buddy/internal/service/tables/models"
)

// Service управление каталогом столов
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// List возвращает все столы по возрастанию id
func (s *Service) List(ctx context.Context) ([]*models.TableResponse, error) {
	tables, err := s.tableRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTables(tables), nil
}

// Create добавляет стол в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: adding table capacity=%d", req.Capacity)

	table, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table id=%d created", created.ID)
	return models.FromDomainTable(created), nil
}

// UpdateStatus меняет административный статус стола.
// Столы со статусом, отличным от available, не участвуют в подборе.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateTableStatusRequest) (*models.TableResponse, error) {
	s.logger.Info("UpdateStatus: table id=%d -> %s", id, req.Status)

	status, err := domain.ParseTableStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tableRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("UpdateStatus: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("UpdateStatus: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTable(table), nil
}
