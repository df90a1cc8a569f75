package create_reservation

import (
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	createReservation "github.com/m04kA/table-buddy/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Date            string  `json:"date"` // "2026-10-19"
	Time            string  `json:"time"` // "18:00"
	PartySize       int     `json:"partySize"`
	TableID         *int64  `json:"tableId,omitempty"` // предпочтительный стол
	Occasion        *string `json:"occasion,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	TableID         int64   `json:"tableId"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	Occasion        *string `json:"occasion,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	Message         string  `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Name:            r.Name,
		Phone:           r.Phone,
		Date:            r.Date,
		Time:            r.Time,
		PartySize:       r.PartySize,
		TableHint:       r.TableID,
		Occasion:        r.Occasion,
		SpecialRequests: r.SpecialRequests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response, message string) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		TableID:         resp.TableID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		PartySize:       resp.PartySize,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		Occasion:        resp.Occasion,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		Message:         message,
	}
}
