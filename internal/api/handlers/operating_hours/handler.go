package operating_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/service/settings"
	"github.com/m04kA/table-buddy/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректное расписание, ожидается HH:MM и open <= close"
	msgNotFound           = "расписание для дня не задано"
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

// HandleList GET /api/v1/operating-hours
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.service.GetCalendar(r.Context())
	if err != nil {
		h.logger.Error("GET /operating-hours - Failed to get calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, calendar)
}

// HandleUpsert PUT /api/v1/operating-hours/{day}
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	var req models.OperatingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /operating-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours, err := h.service.UpsertHours(r.Context(), day, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /operating-hours/{day} - Invalid data: day=%s, error=%v", day, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /operating-hours/{day} - Failed to save hours: day=%s, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /operating-hours/{day} - Hours saved: day=%s", hours.Day)
	handlers.RespondJSON(w, http.StatusOK, hours)
}

// HandleDelete DELETE /api/v1/operating-hours/{day}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	if err := h.service.DeleteHours(r.Context(), day); err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("DELETE /operating-hours/{day} - Invalid day: %s", day)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, settings.ErrOperatingHoursNotFound):
			h.logger.Warn("DELETE /operating-hours/{day} - Not found: day=%s", day)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /operating-hours/{day} - Failed to delete hours: day=%s, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /operating-hours/{day} - Day closed: day=%s", day)
	w.WriteHeader(http.StatusNoContent)
}
