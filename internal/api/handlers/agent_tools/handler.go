package agent_tools

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/api/messages"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownTool        = "unknown tool"

	maxBodyBytes = 64 << 10
)

// Handler webhook инструментов голосового агента.
// Любой результат движка, включая отказ, возвращается фразой со статусом 200.
type Handler struct {
	checkAvailability CheckAvailabilityUseCase
	findNextSlot      FindNextSlotUseCase
	createReservation CreateReservationUseCase
	logger            Logger
}

func NewHandler(
	checkAvailability CheckAvailabilityUseCase,
	findNextSlot FindNextSlotUseCase,
	createReservation CreateReservationUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		checkAvailability: checkAvailability,
		findNextSlot:      findNextSlot,
		createReservation: createReservation,
		logger:            logger,
	}
}

// Handle POST /api/v1/tools/{tool}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tool := mux.Vars(r)["tool"]

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("POST /tools/%s - Failed to read body: %v", tool, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	args, err := decodeArguments(body)
	if err != nil {
		h.logger.Warn("POST /tools/%s - Invalid arguments: %v", tool, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result string
	switch tool {
	case ToolCheckAvailability:
		verdict, err := h.checkAvailability.Execute(r.Context(), args.toCheckRequest())
		result = messages.Availability(args.Date, args.Time, int(args.NoOfPeople), verdict, err)

	case ToolCheckNextAvailableSlot:
		slot, err := h.findNextSlot.Execute(r.Context(), args.toNextSlotRequest())
		result = messages.NextSlot(args.Date, int(args.NoOfPeople), slot, err)

	case ToolCreateReservation:
		reservation, err := h.createReservation.Execute(r.Context(), args.toCreateRequest())
		result = messages.Reservation(args.Date, args.Time, int(args.NoOfPeople), reservation, err)

	default:
		h.logger.Warn("POST /tools/{tool} - Unknown tool: %q", tool)
		handlers.RespondNotFound(w, msgUnknownTool)
		return
	}

	h.logger.Info("POST /tools/%s - %s", tool, result)
	handlers.RespondJSON(w, http.StatusOK, ToolResponse{Result: result})
}
