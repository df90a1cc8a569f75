package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	reservationRepo "github.com/m04kA/table-buddy/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/table-buddy/internal/infra/storage/table"
)

// ReservationRepository бронирования в памяти
type ReservationRepository struct {
	store *Store
}

// Create сохраняет бронирование. Стол должен существовать.
func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tables[reservation.TableID]; !ok {
		return nil, fmt.Errorf("%w: Create - table id=%d: %w", reservationRepo.ErrExecQuery, reservation.TableID, tableRepo.ErrTableNotFound)
	}

	r.store.nextReservationID++
	now := r.store.now()

	reservation.ID = r.store.nextReservationID
	reservation.CreatedAt = now
	reservation.UpdatedAt = now
	r.store.reservations[reservation.ID] = copyReservation(reservation)

	id := reservation.ID
	r.store.onRollback(ctx, func() { delete(r.store.reservations, id) })

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *ReservationRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return copyReservation(res), nil
}

// GetInWindow получает бронирования даты в интервале времени
func (r *ReservationRepository) GetInWindow(_ context.Context, filter domain.ReservationWindowFilter) ([]*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(filter.Matches), nil
}

// GetByDate получает бронирования на дату
func (r *ReservationRepository) GetByDate(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(res *domain.Reservation) bool {
		if !domain.SameDate(res.Date, filter.Date) {
			return false
		}
		return filter.Status == nil || res.Status == *filter.Status
	}), nil
}

// UpdateStatus переводит бронирование в статус status, если текущий статус входит в from
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.ReservationStatus,
	from []domain.ReservationStatus,
) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if len(from) > 0 && !slices.Contains(from, res.Status) {
		return reservationRepo.ErrStatusConflict
	}

	prevStatus, prevUpdatedAt := res.Status, res.UpdatedAt
	r.store.onRollback(ctx, func() { res.Status, res.UpdatedAt = prevStatus, prevUpdatedAt })

	res.Status = status
	res.UpdatedAt = r.store.now()
	return nil
}

// LockTableForDate ничего не делает: TxManager этого пакета уже выполняет транзакции последовательно
func (r *ReservationRepository) LockTableForDate(_ context.Context, _ int64, _ time.Time) error {
	return nil
}

func (r *ReservationRepository) collect(match func(*domain.Reservation) bool) []*domain.Reservation {
	result := make([]*domain.Reservation, 0)
	for _, res := range r.store.reservations {
		if match(res) {
			result = append(result, copyReservation(res))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Time != result[j].Time {
			return result[i].Time.IsBefore(result[j].Time)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
