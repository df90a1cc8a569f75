package settings

import "errors"

var (
	// ErrOperatingHoursNotFound для дня не задано расписание
	ErrOperatingHoursNotFound = errors.New("operating hours not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
