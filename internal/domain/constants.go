package domain

// Default configuration values
const (
	DefaultTurnaroundMinutes = 15
	DefaultSlotStepMinutes   = 15
	DefaultMaxLookaheadDays  = 7
	DefaultReservationStatus = ReservationStatusConfirmed
)

// Business validation constants
const (
	MinTurnaroundMinutes     = 0
	MaxTurnaroundMinutes     = 600 // 10 hours
	MinTableCapacity         = 1
	MaxTableCapacity         = 100
	MinPartySize             = 1
	MaxCustomerNameLength    = 200
	MaxSpecialRequestsLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов бронирований, которые еще могут повлиять на зал
var ActiveStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}

// InactiveStatuses список статусов завершенных или отмененных бронирований
var InactiveStatuses = []ReservationStatus{
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}
