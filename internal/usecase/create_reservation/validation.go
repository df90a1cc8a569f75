package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/types"
)

type parsedRequest struct {
	name            string
	phone           string
	date            time.Time
	at              types.TimeString
	partySize       int
	tableHint       *int64
	occasion        *string
	specialRequests *string
}

// validateRequest проверяет обязательные поля и разбирает дату и время.
// Все незаполненные поля перечисляются в одной ошибке.
func validateRequest(req *Request) (*parsedRequest, error) {
	if req == nil {
		return nil, &MissingFieldsError{Fields: []string{"name", "phone", "date", "time", "party_size"}}
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.Time) == "" {
		missing = append(missing, "time")
	}
	if req.PartySize == 0 {
		missing = append(missing, "party_size")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if req.PartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: party size must be at least %d", domain.ErrValidation, domain.MinPartySize)
	}

	if len(name) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", domain.ErrValidation, domain.MaxCustomerNameLength)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return nil, fmt.Errorf("%w: special requests must be at most %d characters",
			domain.ErrValidation, domain.MaxSpecialRequestsLength)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	at, err := domain.ParseTime(req.Time)
	if err != nil {
		return nil, err
	}

	return &parsedRequest{
		name:            name,
		phone:           phone,
		date:            date,
		at:              at,
		partySize:       req.PartySize,
		tableHint:       req.TableHint,
		occasion:        nonEmpty(req.Occasion),
		specialRequests: nonEmpty(req.SpecialRequests),
	}, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
