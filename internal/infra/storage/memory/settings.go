package memory

import (
	"context"

	"github.com/m04kA/table-buddy/internal/domain"
	settingsRepo "github.com/m04kA/table-buddy/internal/infra/storage/settings"
)

// SettingsRepository расписание и оборачиваемость в памяти
type SettingsRepository struct {
	store *Store
}

// GetAllOperatingHours возвращает расписание рабочих дней, начиная с понедельника
func (r *SettingsRepository) GetAllOperatingHours(_ context.Context) ([]*domain.OperatingHours, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.OperatingHours, 0, len(r.store.hours))
	for _, day := range domain.Weekdays {
		if h, ok := r.store.hours[day]; ok {
			result = append(result, copyHours(h))
		}
	}
	return result, nil
}

// UpsertOperatingHours создает или заменяет расписание дня
func (r *SettingsRepository) UpsertOperatingHours(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day := hours.Day
	prev, existed := r.store.hours[day]
	r.store.onRollback(ctx, func() { r.restoreHours(day, prev, existed) })

	hours.UpdatedAt = r.store.now()
	r.store.hours[day] = copyHours(hours)
	return hours, nil
}

// DeleteOperatingHours удаляет расписание дня
func (r *SettingsRepository) DeleteOperatingHours(ctx context.Context, day string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev, ok := r.store.hours[day]
	if !ok {
		return settingsRepo.ErrOperatingHoursNotFound
	}
	r.store.onRollback(ctx, func() { r.restoreHours(day, prev, true) })

	delete(r.store.hours, day)
	return nil
}

// GetTurnaround возвращает время оборачиваемости или ErrSettingNotFound
func (r *SettingsRepository) GetTurnaround(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.turnaround == nil {
		return 0, settingsRepo.ErrSettingNotFound
	}
	return *r.store.turnaround, nil
}

// SetTurnaround сохраняет время оборачиваемости
func (r *SettingsRepository) SetTurnaround(ctx context.Context, minutes int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev := r.store.turnaround
	r.store.onRollback(ctx, func() { r.store.turnaround = prev })

	r.store.turnaround = &minutes
	return nil
}

func (r *SettingsRepository) restoreHours(day string, prev *domain.OperatingHours, existed bool) {
	if existed {
		r.store.hours[day] = prev
		return
	}
	delete(r.store.hours, day)
}
