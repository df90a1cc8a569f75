package agent_tools

import (
	"context"

	checkAvailability "github.com/m04kA/table-buddy/internal/usecase/check_availability"
	createReservation "github.com/m04kA/table-buddy/internal/usecase/create_reservation"
	findNextSlot "github.com/m04kA/table-buddy/internal/usecase/find_next_slot"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

type FindNextSlotUseCase interface {
	Execute(ctx context.Context, req *findNextSlot.Request) (*findNextSlot.Response, error)
}

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
