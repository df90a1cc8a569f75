package models

import (
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
)

// ListReservationsRequest запрос списка бронирований на дату
type ListReservationsRequest struct {
	Date   string  `json:"date"`             // "2026-10-19"
	Status *string `json:"status,omitempty"` // фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.ReservationsFilter{}, err
	}

	filter := domain.ReservationsFilter{Date: date}
	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64     `json:"id"`
	TableID         int64     `json:"tableId"`
	Date            string    `json:"date"` // "2026-10-19"
	Time            string    `json:"time"` // "18:00"
	PartySize       int       `json:"partySize"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	Occasion        *string   `json:"occasion,omitempty"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Date         string                 `json:"date"`
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		TableID:         r.TableID,
		Date:            r.Date.Format(domain.DateFormat),
		Time:            r.Time.String(),
		PartySize:       r.PartySize,
		Status:          string(r.Status),
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Occasion:        r.Occasion,
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(date time.Time, reservations []*domain.Reservation) *ReservationListResponse {
	result := &ReservationListResponse{
		Date:         date.Format(domain.DateFormat),
		Reservations: make([]*ReservationResponse, len(reservations)),
	}
	for i, r := range reservations {
		result.Reservations[i] = FromDomainReservation(r)
	}
	return result
}
