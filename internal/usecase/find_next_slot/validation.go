package find_next_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/types"
)

type parsedRequest struct {
	date      time.Time
	at        types.TimeString
	partySize int
}

// validateRequest валидирует и разбирает входные данные
func validateRequest(req *Request) (*parsedRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", domain.ErrValidation)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	at, err := domain.ParseTime(req.Time)
	if err != nil {
		return nil, err
	}

	if req.PartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: party size must be at least %d", domain.ErrValidation, domain.MinPartySize)
	}

	return &parsedRequest{date: date, at: at, partySize: req.PartySize}, nil
}
