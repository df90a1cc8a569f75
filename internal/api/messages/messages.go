// Package messages форматирует результаты движка доступности в фразы для голосового агента.
package messages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/table-buddy/internal/domain"
	createReservation "github.com/m04kA/table-buddy/internal/usecase/create_reservation"
)

const (
	msgPastDateTime     = "The requested date and time has already passed. Please choose a future time."
	msgCheckFailed      = "Failed to check availability, please try again."
	msgCreateFailed     = "Failed to create reservation, please try again."
	msgSearchFailed     = "Failed to find the next available slot, please try again."
	msgAskNextSlot      = "Would you like me to check the next available slot?"
	msgInvalidRequest   = "Invalid request: %s."
	msgMissingFields    = "Missing required fields: %s."
	msgNoCapacity       = "Sorry, we have no tables that can accommodate %d people."
	msgClosedAllDay     = "Sorry, the restaurant is closed on %s."
	msgClosedAtTime     = "Sorry, the restaurant is not open at %s on %s. Opening hours: lunch %s, dinner %s."
	msgAvailable        = "Good news! We have %d %s available for %d people on %s at %s."
	msgUnavailable      = "Sorry, no tables are available for %d people on %s at %s. "
	msgSlotFound        = "The next available slot for %d people is on %s at %s."
	msgSlotNextOpening  = "There are no more available slots on %s. We open again on %s at %s."
	msgSlotNotFound     = "Sorry, no available slots found for %d people."
	msgReservationDone  = "Reservation confirmed! Your reservation ID is %d: table %d for %d people on %s at %s under the name %s."
	msgReservationAwait = "Reservation request received! Your reservation ID is %d: table %d for %d people on %s at %s under the name %s. It is pending confirmation."
)

// Availability формирует ответ на проверку доступности
func Availability(date, at string, partySize int, verdict *domain.Verdict, err error) string {
	if err == nil {
		return fmt.Sprintf(msgAvailable, verdict.AvailableTables, plural(verdict.AvailableTables, "table", "tables"),
			partySize, verdict.Date.Format(domain.DateFormat), verdict.Time)
	}
	if errors.Is(err, domain.ErrNoAvailability) {
		return fmt.Sprintf(msgUnavailable, partySize, date, at) + msgAskNextSlot
	}
	return failure(err, partySize, msgCheckFailed)
}

// NextSlot формирует ответ на поиск ближайшего слота
func NextSlot(date string, partySize int, slot *domain.Slot, err error) string {
	if err == nil {
		if !slot.Verified {
			return fmt.Sprintf(msgSlotNextOpening, date, slot.Date.Format(domain.DateFormat), slot.Time)
		}
		return fmt.Sprintf(msgSlotFound, partySize, slot.Date.Format(domain.DateFormat), slot.Time)
	}
	if errors.Is(err, domain.ErrSlotNotFound) {
		return fmt.Sprintf(msgSlotNotFound, partySize)
	}
	return failure(err, partySize, msgSearchFailed)
}

// Reservation формирует ответ на создание бронирования
func Reservation(date, at string, partySize int, resp *createReservation.Response, err error) string {
	if err == nil {
		template := msgReservationDone
		if resp.Status == string(domain.ReservationStatusPending) {
			template = msgReservationAwait
		}
		return fmt.Sprintf(template, resp.ID, resp.TableID, resp.PartySize,
			resp.Date.Format(domain.DateFormat), resp.Time, resp.CustomerName)
	}
	if errors.Is(err, domain.ErrNoAvailability) {
		return fmt.Sprintf(msgUnavailable, partySize, date, at) + msgAskNextSlot
	}
	return failure(err, partySize, msgCreateFailed)
}

func failure(err error, partySize int, internal string) string {
	var missing *createReservation.MissingFieldsError
	var closed *domain.ClosedError

	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf(msgMissingFields, strings.Join(missing.Fields, ", "))
	case errors.Is(err, domain.ErrValidation):
		return fmt.Sprintf(msgInvalidRequest, strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "))
	case errors.Is(err, domain.ErrPastDateTime):
		return msgPastDateTime
	case errors.As(err, &closed):
		if closed.IsClosedAllDay() {
			return fmt.Sprintf(msgClosedAllDay, weekdayTitle(closed.Weekday)+"s")
		}
		return fmt.Sprintf(msgClosedAtTime, closed.Time, weekdayTitle(closed.Weekday), closed.Hours.Lunch, closed.Hours.Dinner)
	case errors.Is(err, domain.ErrNoCapacity):
		return fmt.Sprintf(msgNoCapacity, partySize)
	default:
		return internal
	}
}

func weekdayTitle(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
