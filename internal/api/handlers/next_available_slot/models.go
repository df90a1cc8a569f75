package next_available_slot

import (
	"github.com/m04kA/table-buddy/internal/domain"
	findNextSlot "github.com/m04kA/table-buddy/internal/usecase/find_next_slot"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
	// Verified false означает время открытия следующего дня без проверки столов
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(slot *findNextSlot.Response, message string) *SlotResponse {
	return &SlotResponse{
		Date:     slot.Date.Format(domain.DateFormat),
		Time:     slot.Time.String(),
		Verified: slot.Verified,
		Message:  message,
	}
}
