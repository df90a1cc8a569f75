package turnaround

import (
	"errors"
	"net/http"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/service/settings"
	"github.com/m04kA/table-buddy/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMinutes     = "время оборачиваемости должно быть от 0 до 600 минут"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/settings/turnaround
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTurnaround(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/turnaround - Failed to get turnaround: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePut PUT /api/v1/settings/turnaround
func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req models.TurnaroundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/turnaround - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetTurnaround(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings/turnaround - Invalid minutes: %d", req.Minutes)
			handlers.RespondBadRequest(w, msgInvalidMinutes)

		default:
			h.logger.Error("PUT /settings/turnaround - Failed to set turnaround: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/turnaround - Turnaround set to %d minutes", result.Minutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
