package create_reservation

import (
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/types"
)

// Options настройки создания бронирования
type Options struct {
	DefaultTurnaround int
	PendingBlocks     bool
	DefaultStatus     domain.ReservationStatus // confirmed или pending
	Location          *time.Location
}

// Request модель запроса на создание бронирования
type Request struct {
	Name            string
	Phone           string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	PartySize       int
	TableHint       *int64 // предпочтительный стол (опционально)
	Occasion        *string
	SpecialRequests *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	TableID         int64
	Date            time.Time
	Time            types.TimeString
	PartySize       int
	Status          string
	CustomerName    string
	CustomerPhone   string
	Occasion        *string
	SpecialRequests *string
	CreatedAt       time.Time
}
