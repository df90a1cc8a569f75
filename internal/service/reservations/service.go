package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/table-buddy/internal/domain"
	reservationRepo "github.com/m04kA/table-buddy/internal/infra/storage/reservation"
	"github.com/m04kA/table-buddy/internal/service/reservations/models"
)

// Service сервис для просмотра и смены статуса бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByDate получает бронирования на дату, опционально по статусу
func (s *Service) ListByDate(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDate: fetching reservations for date=%s, status=%v", req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByDate: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: successfully fetched %d reservations for date=%s", len(reservations), req.Date)
	return models.FromDomainReservationList(filter.Date, reservations), nil
}

// Cancel отменяет ожидающее или подтвержденное бронирование.
// Отмененное бронирование больше не занимает стол.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return nil, ErrCannotCancel
	}

	return s.transition(ctx, "Cancel", reservation, domain.ReservationStatusCancelled,
		domain.CancellableStatuses(), ErrCannotCancel)
}

// Complete отмечает подтвержденное бронирование завершенным
func (s *Service) Complete(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Complete: completing reservation id=%d", id)

	reservation, err := s.get(ctx, "Complete", id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeCompleted() {
		s.logger.Warn("Complete: reservation id=%d cannot be completed, status=%s", id, reservation.Status)
		return nil, ErrCannotComplete
	}

	return s.transition(ctx, "Complete", reservation, domain.ReservationStatusCompleted,
		domain.CompletableStatuses(), ErrCannotComplete)
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// transition меняет статус одним условным обновлением: параллельный переход,
// успевший раньше, приводит к errNotAllowed
func (s *Service) transition(
	ctx context.Context,
	op string,
	reservation *domain.Reservation,
	status domain.ReservationStatus,
	from []domain.ReservationStatus,
	errNotAllowed error,
) (*models.ReservationResponse, error) {
	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, status, from); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("%s: reservation id=%d not found during update", op, reservation.ID)
			return nil, ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrStatusConflict):
			s.logger.Warn("%s: reservation id=%d changed status concurrently", op, reservation.ID)
			return nil, errNotAllowed
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, reservation.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	reservation.Status = status
	s.logger.Info("%s: reservation id=%d is now %s", op, reservation.ID, status)
	return models.FromDomainReservation(reservation), nil
}
