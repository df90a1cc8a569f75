package router

import (
	"net/http"

	"github.com/gorilla/mux"

	agentToolsHandler "github.com/m04kA/table-buddy/internal/api/handlers/agent_tools"
	checkAvailabilityHandler "github.com/m04kA/table-buddy/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/table-buddy/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/m04kA/table-buddy/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/table-buddy/internal/api/handlers/list_reservations"
	nextAvailableSlotHandler "github.com/m04kA/table-buddy/internal/api/handlers/next_available_slot"
	operatingHoursHandler "github.com/m04kA/table-buddy/internal/api/handlers/operating_hours"
	tablesHandler "github.com/m04kA/table-buddy/internal/api/handlers/tables"
	turnaroundHandler "github.com/m04kA/table-buddy/internal/api/handlers/turnaround"
	updateReservationStatusHandler "github.com/m04kA/table-buddy/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/table-buddy/internal/api/middleware"
)

// Handlers все HTTP обработчики сервиса
type Handlers struct {
	CheckAvailability       *checkAvailabilityHandler.Handler
	NextAvailableSlot       *nextAvailableSlotHandler.Handler
	CreateReservation       *createReservationHandler.Handler
	GetReservation          *getReservationHandler.Handler
	ListReservations        *listReservationsHandler.Handler
	UpdateReservationStatus *updateReservationStatusHandler.Handler
	Tables                  *tablesHandler.Handler
	OperatingHours          *operatingHoursHandler.Handler
	Turnaround              *turnaroundHandler.Handler
	AgentTools              *agentToolsHandler.Handler
}

// Metrics настройки экспорта метрик. Nil отключает метрики.
type Metrics struct {
	Path     string
	Recorder middleware.HTTPMetricsRecorder
	Handler  http.Handler
}

// New собирает роутер с префиксом /api/v1
func New(h *Handlers, metrics *Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if metrics != nil {
		r.Use(middleware.MetricsMiddleware(metrics.Recorder))
		r.Handle(metrics.Path, metrics.Handler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/availability", h.CheckAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/next", h.NextAvailableSlot.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", h.CreateReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", h.ListReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", h.GetReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", h.UpdateReservationStatus.HandleCancel).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}/complete", h.UpdateReservationStatus.HandleComplete).Methods(http.MethodPatch)

	// --- Администрирование зала ---
	api.HandleFunc("/tables", h.Tables.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/tables", h.Tables.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/tables/{tableId}/status", h.Tables.HandleUpdateStatus).Methods(http.MethodPatch)

	api.HandleFunc("/operating-hours", h.OperatingHours.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/operating-hours/{day}", h.OperatingHours.HandleUpsert).Methods(http.MethodPut)
	api.HandleFunc("/operating-hours/{day}", h.OperatingHours.HandleDelete).Methods(http.MethodDelete)

	api.HandleFunc("/settings/turnaround", h.Turnaround.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/settings/turnaround", h.Turnaround.HandlePut).Methods(http.MethodPut)

	// --- Инструменты голосового агента ---
	api.HandleFunc("/tools/{tool}", h.AgentTools.Handle).Methods(http.MethodPost)

	return r
}
