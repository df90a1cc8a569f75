package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/dbmetrics"
	"github.com/m04kA/table-buddy/pkg/psqlbuilder"
)

const (
	hoursTable    = "operating_hours"
	settingsTable = "table_settings"

	// settingsRowID в table_settings хранится одна строка
	settingsRowID = 1
)

// Repository репозиторий настроек ресторана: расписание по дням недели и время оборачиваемости стола
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAllOperatingHours возвращает расписание всех рабочих дней.
// Дни без записи считаются выходными.
func (r *Repository) GetAllOperatingHours(ctx context.Context) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day",
		"lunch_opening_time",
		"lunch_closing_time",
		"dinner_opening_time",
		"dinner_closing_time",
		"updated_at",
	).
		From(hoursTable).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllOperatingHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OperatingHours, 0, len(domain.Weekdays))
	for rows.Next() {
		var h domain.OperatingHours
		var updatedAt sql.NullTime

		err := rows.Scan(
			&h.Day,
			&h.Lunch.Open,
			&h.Lunch.Close,
			&h.Dinner.Open,
			&h.Dinner.Close,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllOperatingHours - scan row: %v", ErrScanRow, err)
		}

		h.UpdatedAt = updatedAt.Time
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllOperatingHours - rows error: %w", ErrScanRow, err)
	}

	return hours, nil
}

// UpsertOperatingHours создает или заменяет расписание дня недели
func (r *Repository) UpsertOperatingHours(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(hoursTable).
		Columns(
			"day",
			"lunch_opening_time",
			"lunch_closing_time",
			"dinner_opening_time",
			"dinner_closing_time",
		).
		Values(
			hours.Day,
			hours.Lunch.Open,
			hours.Lunch.Close,
			hours.Dinner.Open,
			hours.Dinner.Close,
		).
		Suffix(`ON CONFLICT (day) DO UPDATE SET
			lunch_opening_time = EXCLUDED.lunch_opening_time,
			lunch_closing_time = EXCLUDED.lunch_closing_time,
			dinner_opening_time = EXCLUDED.dinner_opening_time,
			dinner_closing_time = EXCLUDED.dinner_closing_time,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOperatingHours - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertOperatingHours - execute insert: %v", ErrExecQuery, err)
	}

	hours.UpdatedAt = updatedAt.Time
	return hours, nil
}

// DeleteOperatingHours удаляет расписание дня, после чего ресторан в этот день закрыт
func (r *Repository) DeleteOperatingHours(ctx context.Context, day string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(hoursTable).
		Where(squirrel.Eq{"day": day}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteOperatingHours - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOperatingHours - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOperatingHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOperatingHoursNotFound
	}

	return nil
}

// GetTurnaround возвращает время оборачиваемости стола в минутах.
// Если настройка не задана, возвращает ErrSettingNotFound.
func (r *Repository) GetTurnaround(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("turnaround_time").
		From(settingsTable).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetTurnaround - build select query: %v", ErrBuildQuery, err)
	}

	var minutes int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSettingNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetTurnaround - scan setting: %w", ErrScanRow, err)
	}

	return minutes, nil
}

// SetTurnaround сохраняет время оборачиваемости стола
func (r *Repository) SetTurnaround(ctx context.Context, minutes int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(settingsTable).
		Columns("id", "turnaround_time").
		Values(settingsRowID, minutes).
		Suffix("ON CONFLICT (id) DO UPDATE SET turnaround_time = EXCLUDED.turnaround_time, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetTurnaround - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetTurnaround - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
