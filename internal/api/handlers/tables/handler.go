package tables

import (
	"errors"
	"net/http"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	tablesService "github.com/m04kA/table-buddy/internal/service/tables"
	"github.com/m04kA/table-buddy/internal/service/tables/models"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные стола"
	msgNotFound           = "стол не найден"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/tables
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/tables
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tablesService.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /tables - Failed to create table: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created successfully: table_id=%d", table.ID)
	handlers.RespondJSON(w, http.StatusCreated, table)
}

// HandleUpdateStatus PATCH /api/v1/tables/{tableId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	tableID, err := handlers.PathInt64(r, "tableId")
	if err != nil {
		h.logger.Warn("PATCH /tables/{id}/status - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req models.UpdateTableStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.UpdateStatus(r.Context(), tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tablesService.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id}/status - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tablesService.ErrInvalidInput):
			h.logger.Warn("PATCH /tables/{id}/status - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /tables/{id}/status - Failed to update table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id}/status - Table updated: table_id=%d, status=%s", tableID, table.Status)
	handlers.RespondJSON(w, http.StatusOK, table)
}
