package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/table-buddy/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ParseReservationStatus converts a raw string into a known status
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch status := ReservationStatus(s); status {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown reservation status %q", ErrValidation, s)
	}
}

// Reservation represents a table booked for a party at a date and time
type Reservation struct {
	ID              int64
	TableID         int64
	Date            time.Time // календарная дата без времени
	Time            types.TimeString
	PartySize       int
	Status          ReservationStatus
	CustomerName    string
	CustomerPhone   string
	Occasion        *string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation is pending or confirmed
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return slices.Contains(CancellableStatuses(), r.Status)
}

// CanBeCompleted returns true if the reservation can be marked as completed
func (r *Reservation) CanBeCompleted() bool {
	return slices.Contains(CompletableStatuses(), r.Status)
}

// CancellableStatuses статусы, из которых допускается отмена
func CancellableStatuses() []ReservationStatus {
	return []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}
}

// CompletableStatuses статусы, из которых допускается завершение
func CompletableStatuses() []ReservationStatus {
	return []ReservationStatus{ReservationStatusConfirmed}
}

// BlocksWith returns true if the reservation occupies its table under the given blocking policy
func (r *Reservation) BlocksWith(blocking []ReservationStatus) bool {
	for _, s := range blocking {
		if r.Status == s {
			return true
		}
	}
	return false
}

// BlockingStatuses возвращает статусы, которые занимают стол.
// Подтвержденные бронирования блокируют всегда, ожидающие - только если включено pendingBlocks.
func BlockingStatuses(pendingBlocks bool) []ReservationStatus {
	if pendingBlocks {
		return []ReservationStatus{ReservationStatusConfirmed, ReservationStatusPending}
	}
	return []ReservationStatus{ReservationStatusConfirmed}
}

// ReservationWindowFilter фильтр бронирований одной даты в интервале времени [From, To]
type ReservationWindowFilter struct {
	Date     time.Time           // Обязательный параметр
	From     types.TimeString    // Начало интервала включительно
	To       types.TimeString    // Конец интервала включительно
	Statuses []ReservationStatus // Пустой список - любые статусы
	TableID  *int64              // Фильтр по столу (опционально)
}

// WholeDayFilter фильтр на все бронирования даты с указанными статусами
func WholeDayFilter(date time.Time, statuses []ReservationStatus) ReservationWindowFilter {
	return ReservationWindowFilter{
		Date:     date,
		From:     types.TimeString("00:00"),
		To:       types.TimeString("23:59"),
		Statuses: statuses,
	}
}

// Matches returns true if the reservation satisfies the filter
func (f ReservationWindowFilter) Matches(r *Reservation) bool {
	if !SameDate(r.Date, f.Date) {
		return false
	}
	if r.Time.IsBefore(f.From) || r.Time.IsAfter(f.To) {
		return false
	}
	if f.TableID != nil && r.TableID != *f.TableID {
		return false
	}
	if len(f.Statuses) > 0 && !r.BlocksWith(f.Statuses) {
		return false
	}
	return true
}

// ReservationsFilter фильтр списка бронирований за дату
type ReservationsFilter struct {
	Date   time.Time
	Status *ReservationStatus
}
