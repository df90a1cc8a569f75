package models

import (
	"strings"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/types"
)

// WindowDTO интервал обслуживания
type WindowDTO struct {
	Open  string `json:"open"`  // "11:30"
	Close string `json:"close"` // "14:30"
}

// OperatingHoursRequest запрос на установку расписания дня
type OperatingHoursRequest struct {
	Lunch  WindowDTO `json:"lunch"`
	Dinner WindowDTO `json:"dinner"`
}

// ToDomain конвертирует request в domain модель и валидирует ее
func (r *OperatingHoursRequest) ToDomain(day string) (*domain.OperatingHours, error) {
	hours := &domain.OperatingHours{
		Day: strings.ToLower(day),
		Lunch: domain.Window{
			Open:  types.TimeString(r.Lunch.Open),
			Close: types.TimeString(r.Lunch.Close),
		},
		Dinner: domain.Window{
			Open:  types.TimeString(r.Dinner.Open),
			Close: types.TimeString(r.Dinner.Close),
		},
	}
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	return hours, nil
}

// OperatingHoursResponse расписание одного дня
type OperatingHoursResponse struct {
	Day       string    `json:"day"`
	Lunch     WindowDTO `json:"lunch"`
	Dinner    WindowDTO `json:"dinner"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalendarResponse недельное расписание. Отсутствующие дни - выходные.
type CalendarResponse struct {
	Days       []*OperatingHoursResponse `json:"days"`
	ClosedDays []string                  `json:"closedDays"`
}

// TurnaroundRequest запрос на изменение времени оборачиваемости
type TurnaroundRequest struct {
	Minutes int `json:"minutes"`
}

// TurnaroundResponse текущее время оборачиваемости
type TurnaroundResponse struct {
	Minutes   int  `json:"minutes"`
	IsDefault bool `json:"isDefault"` // true, если значение не сохранено и взято из конфигурации
}

// FromDomainOperatingHours конвертирует domain модель в response
func FromDomainOperatingHours(h *domain.OperatingHours) *OperatingHoursResponse {
	return &OperatingHoursResponse{
		Day:       h.Day,
		Lunch:     WindowDTO{Open: h.Lunch.Open.String(), Close: h.Lunch.Close.String()},
		Dinner:    WindowDTO{Open: h.Dinner.Open.String(), Close: h.Dinner.Close.String()},
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainCalendar конвертирует календарь в response
func FromDomainCalendar(c *domain.OperatingCalendar) *CalendarResponse {
	result := &CalendarResponse{
		Days:       make([]*OperatingHoursResponse, 0, len(domain.Weekdays)),
		ClosedDays: make([]string, 0),
	}
	for _, day := range domain.Weekdays {
		h, ok := c.WindowsFor(day)
		if !ok {
			result.ClosedDays = append(result.ClosedDays, day)
			continue
		}
		result.Days = append(result.Days, FromDomainOperatingHours(h))
	}
	return result
}
