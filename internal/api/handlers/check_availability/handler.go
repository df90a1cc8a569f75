package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/api/messages"
	"github.com/m04kA/table-buddy/internal/domain"
	checkAvailability "github.com/m04kA/table-buddy/internal/usecase/check_availability"
)

const (
	msgInvalidPartySize = "некорректный размер компании"
	msgMissingParams    = "параметры date, time и partySize обязательны"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (YYYY-MM-DD), time (HH:MM), partySize
//
// Отказы по расписанию, вместимости и занятости возвращаются со статусом 200 и available=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	partySize, err := handlers.QueryInt(r, "partySize")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &checkAvailability.Request{
		Date:      query.Get("date"),
		Time:      query.Get("time"),
		PartySize: partySize,
	}
	if req.Date == "" || req.Time == "" || query.Get("partySize") == "" {
		h.logger.Warn("GET /availability - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	verdict, err := h.useCase.Execute(r.Context(), req)
	message := messages.Availability(req.Date, req.Time, req.PartySize, verdict, err)

	switch {
	case err == nil:
		h.logger.Info("GET /availability - Available: date=%s, time=%s, party=%d, tables=%v",
			req.Date, req.Time, req.PartySize, verdict.TableIDs)

	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("GET /availability - Invalid request: %v", err)
		handlers.RespondBadRequest(w, message)
		return

	case errors.Is(err, domain.ErrPastDateTime),
		errors.Is(err, domain.ErrClosed),
		errors.Is(err, domain.ErrNoCapacity),
		errors.Is(err, domain.ErrNoAvailability):
		h.logger.Info("GET /availability - Not available: date=%s, time=%s, party=%d, reason=%v",
			req.Date, req.Time, req.PartySize, err)

	default:
		h.logger.Error("GET /availability - Failed to check availability: date=%s, time=%s, error=%v",
			req.Date, req.Time, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(req, verdict, err, message))
}
