package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/dbmetrics"
	"github.com/m04kA/table-buddy/pkg/psqlbuilder"
)

const tableName = "reservations"

var columns = []string{
	"id",
	"table_id",
	"reservation_date",
	"reservation_time",
	"party_size",
	"status",
	"customer_name",
	"customer_phone",
	"occasion",
	"special_requests",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"table_id",
			"reservation_date",
			"reservation_time",
			"party_size",
			"status",
			"customer_name",
			"customer_phone",
			"occasion",
			"special_requests",
		).
		Values(
			reservation.TableID,
			reservation.Date.Format(domain.DateFormat),
			reservation.Time,
			reservation.PartySize,
			reservation.Status,
			reservation.CustomerName,
			reservation.CustomerPhone,
			reservation.Occasion,
			reservation.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetInWindow получает бронирования одной даты с временем начала в [filter.From, filter.To].
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) GetInWindow(ctx context.Context, filter domain.ReservationWindowFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := windowQuery(filter, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetInWindow - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByDate получает бронирования на дату, опционально фильтруя по статусу
func (r *Repository) GetByDate(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := byDateQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus переводит бронирование в статус status, если текущий статус входит в from.
// Пустой from снимает ограничение. Если бронирование есть, но статус не подошел, возвращает ErrStatusConflict.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.ReservationStatus,
	from []domain.ReservationStatus,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateStatusQuery(id, status, from).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if len(from) == 0 {
			return ErrReservationNotFound
		}
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrStatusConflict
	}

	return nil
}

// LockTableForDate берет транзакционный advisory lock на пару (стол, дата).
// Вне транзакции блокировка бессмысленна, поэтому вызов игнорируется.
func (r *Repository) LockTableForDate(ctx context.Context, tableID int64, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dateKey := dateLockKey(date)

	_, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1::int, $2::int)", tableID, dateKey)
	if err != nil {
		return fmt.Errorf("%w: table=%d date=%d: %w", ErrLock, tableID, dateKey, err)
	}

	return nil
}

// windowQuery строит выборку бронирований даты во временном окне
func windowQuery(filter domain.ReservationWindowFilter, forUpdate bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"reservation_date": filter.Date.Format(domain.DateFormat)}).
		Where(squirrel.GtOrEq{"reservation_time": filter.From}).
		Where(squirrel.LtOrEq{"reservation_time": filter.To}).
		OrderBy("reservation_time ASC, id ASC")

	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}

	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder
}

func byDateQuery(filter domain.ReservationsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"reservation_date": filter.Date.Format(domain.DateFormat)}).
		OrderBy("reservation_time ASC, table_id ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return selectBuilder
}

func updateStatusQuery(id int64, status domain.ReservationStatus, from []domain.ReservationStatus) squirrel.UpdateBuilder {
	updateBuilder := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if len(from) > 0 {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"status": statusStrings(from)})
	}

	return updateBuilder
}

// dateLockKey ключ advisory lock для даты: YYYYMMDD
func dateLockKey(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime
	var occasion, specialRequests sql.NullString

	err := row.Scan(
		&reservation.ID,
		&reservation.TableID,
		&reservation.Date,
		&reservation.Time,
		&reservation.PartySize,
		&reservation.Status,
		&reservation.CustomerName,
		&reservation.CustomerPhone,
		&occasion,
		&specialRequests,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if occasion.Valid {
		reservation.Occasion = &occasion.String
	}
	if specialRequests.Valid {
		reservation.SpecialRequests = &specialRequests.String
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
