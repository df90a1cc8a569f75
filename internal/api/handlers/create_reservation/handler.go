package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/api/messages"
	"github.com/m04kA/table-buddy/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	message := messages.Reservation(req.Date, req.Time, req.PartySize, result, err)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrPastDateTime):
			h.logger.Warn("POST /reservations - Rejected: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondBadRequest(w, message)

		case errors.Is(err, domain.ErrClosed), errors.Is(err, domain.ErrNoCapacity):
			h.logger.Info("POST /reservations - Cannot seat: date=%s, time=%s, party=%d, reason=%v",
				req.Date, req.Time, req.PartySize, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, domain.ErrNoAvailability):
			h.logger.Info("POST /reservations - No free table: date=%s, time=%s, party=%d",
				req.Date, req.Time, req.PartySize)
			handlers.RespondConflict(w, message)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, table_id=%d",
		result.ID, result.TableID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, message))
}
