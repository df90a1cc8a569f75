package update_reservation_status

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/service/reservations"
	"github.com/m04kA/table-buddy/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgCannotCancel         = "бронирование не может быть отменено"
	msgCannotComplete       = "завершить можно только подтвержденное бронирование"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCancel PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PATCH /reservations/{id}/cancel", h.service.Cancel)
}

// HandleComplete PATCH /api/v1/reservations/{reservationId}/complete
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PATCH /reservations/{id}/complete", h.service.Complete)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	transition func(ctx context.Context, id int64) (*models.ReservationResponse, error),
) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("%s - Invalid reservation ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	reservation, err := transition(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("%s - Reservation not found: reservation_id=%d", route, reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("%s - Cannot cancel: reservation_id=%d", route, reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrCannotComplete):
			h.logger.Warn("%s - Cannot complete: reservation_id=%d", route, reservationID)
			handlers.RespondConflict(w, msgCannotComplete)

		default:
			h.logger.Error("%s - Failed to update reservation: reservation_id=%d, error=%v", route, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservation updated successfully: reservation_id=%d, status=%s",
		route, reservationID, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
