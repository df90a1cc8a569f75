package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/table-buddy/internal/domain"
	settingsRepo "github.com/m04kA/table-buddy/internal/infra/storage/settings"
	"github.com/m04kA/table-buddy/internal/service/settings/models"
)

// Service управление расписанием работы и временем оборачиваемости
type Service struct {
	settingsRepo      SettingsRepository
	defaultTurnaround int
	logger            Logger
}

// NewService создает новый экземпляр сервиса настроек.
// defaultTurnaround используется, пока значение не сохранено в хранилище.
func NewService(settingsRepo SettingsRepository, defaultTurnaround int, logger Logger) *Service {
	return &Service{
		settingsRepo:      settingsRepo,
		defaultTurnaround: defaultTurnaround,
		logger:            logger,
	}
}

// GetCalendar получает недельное расписание
func (s *Service) GetCalendar(ctx context.Context) (*models.CalendarResponse, error) {
	hours, err := s.settingsRepo.GetAllOperatingHours(ctx)
	if err != nil {
		s.logger.Error("GetCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendar(domain.NewOperatingCalendar(hours)), nil
}

// UpsertHours создает или заменяет расписание дня
func (s *Service) UpsertHours(ctx context.Context, day string, req *models.OperatingHoursRequest) (*models.OperatingHoursResponse, error) {
	s.logger.Info("UpsertHours: setting hours for %s: lunch=%v dinner=%v", day, req.Lunch, req.Dinner)

	hours, err := req.ToDomain(day)
	if err != nil {
		s.logger.Warn("UpsertHours: validation failed for %s: %v", day, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.settingsRepo.UpsertOperatingHours(ctx, hours)
	if err != nil {
		s.logger.Error("UpsertHours: repository error for %s: %v", day, err)
		return nil, fmt.Errorf("%w: UpsertHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertHours: hours for %s saved", hours.Day)
	return models.FromDomainOperatingHours(saved), nil
}

// DeleteHours удаляет расписание дня. После этого ресторан в этот день закрыт.
func (s *Service) DeleteHours(ctx context.Context, day string) error {
	day = strings.ToLower(day)
	s.logger.Info("DeleteHours: closing %s", day)

	if !domain.IsWeekday(day) {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
	}

	if err := s.settingsRepo.DeleteOperatingHours(ctx, day); err != nil {
		if errors.Is(err, settingsRepo.ErrOperatingHoursNotFound) {
			s.logger.Warn("DeleteHours: no hours for %s", day)
			return ErrOperatingHoursNotFound
		}
		s.logger.Error("DeleteHours: repository error for %s: %v", day, err)
		return fmt.Errorf("%w: DeleteHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetTurnaround получает время оборачиваемости
func (s *Service) GetTurnaround(ctx context.Context) (*models.TurnaroundResponse, error) {
	minutes, err := s.settingsRepo.GetTurnaround(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return &models.TurnaroundResponse{Minutes: s.defaultTurnaround, IsDefault: true}, nil
		}
		s.logger.Error("GetTurnaround: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTurnaround - repository error: %v", ErrInternal, err)
	}

	return &models.TurnaroundResponse{Minutes: minutes}, nil
}

// SetTurnaround сохраняет время оборачиваемости
func (s *Service) SetTurnaround(ctx context.Context, req *models.TurnaroundRequest) (*models.TurnaroundResponse, error) {
	s.logger.Info("SetTurnaround: setting turnaround to %d minutes", req.Minutes)

	turnaround, err := domain.NewTurnaround(req.Minutes)
	if err != nil {
		s.logger.Warn("SetTurnaround: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.SetTurnaround(ctx, turnaround.Minutes()); err != nil {
		s.logger.Error("SetTurnaround: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetTurnaround - repository error: %v", ErrInternal, err)
	}

	return &models.TurnaroundResponse{Minutes: turnaround.Minutes()}, nil
}
