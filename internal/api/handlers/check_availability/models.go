package check_availability

import (
	"github.com/m04kA/table-buddy/internal/domain"
	checkAvailability "github.com/m04kA/table-buddy/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	PartySize       int     `json:"partySize"`
	Available       bool    `json:"available"`
	AvailableTables int     `json:"availableTables"`
	TableIDs        []int64 `json:"tableIds"`
	Reason          string  `json:"reason"` // ok, past, closed, no_capacity, unavailable
	Message         string  `json:"message"`
}

// FromUseCaseResult конвертирует результат use case в HTTP response.
// verdict может быть nil, если проверка прервалась до подбора столов.
func FromUseCaseResult(req *checkAvailability.Request, verdict *checkAvailability.Response, err error, message string) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
		TableIDs:  []int64{},
		Reason:    domain.Outcome(err),
		Message:   message,
	}
	if verdict != nil {
		resp.Available = verdict.IsAvailable()
		resp.AvailableTables = verdict.AvailableTables
		if verdict.TableIDs != nil {
			resp.TableIDs = verdict.TableIDs
		}
	}
	return resp
}
