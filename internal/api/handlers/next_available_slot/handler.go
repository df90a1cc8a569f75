package next_available_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/api/messages"
	"github.com/m04kA/table-buddy/internal/domain"
	findNextSlot "github.com/m04kA/table-buddy/internal/usecase/find_next_slot"
)

const (
	msgInvalidPartySize = "некорректный размер компании"
	msgMissingParams    = "параметры date, time и partySize обязательны"
)

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/next
// Query params: date (YYYY-MM-DD), time (HH:MM), partySize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	partySize, err := handlers.QueryInt(r, "partySize")
	if err != nil {
		h.logger.Warn("GET /availability/next - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &findNextSlot.Request{
		Date:      query.Get("date"),
		Time:      query.Get("time"),
		PartySize: partySize,
	}
	if req.Date == "" || req.Time == "" || query.Get("partySize") == "" {
		h.logger.Warn("GET /availability/next - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	slot, err := h.useCase.Execute(r.Context(), req)
	message := messages.NextSlot(req.Date, req.PartySize, slot, err)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /availability/next - Invalid request: %v", err)
			handlers.RespondBadRequest(w, message)

		case errors.Is(err, domain.ErrNoCapacity):
			h.logger.Info("GET /availability/next - No capacity: party=%d", req.PartySize)
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, domain.ErrSlotNotFound):
			h.logger.Info("GET /availability/next - Slot not found: date=%s, time=%s, party=%d",
				req.Date, req.Time, req.PartySize)
			handlers.RespondNotFound(w, message)

		default:
			h.logger.Error("GET /availability/next - Failed to find slot: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/next - Slot found: date=%s, time=%s, verified=%t",
		slot.Date.Format(domain.DateFormat), slot.Time, slot.Verified)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(slot, message))
}
