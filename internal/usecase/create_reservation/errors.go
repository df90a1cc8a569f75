package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/table-buddy/internal/domain"
)

// ErrInternal возвращается при ошибках хранилища
var ErrInternal = errors.New("create_reservation: internal error")

// MissingFieldsError не заполнены обязательные поля
type MissingFieldsError struct {
	Fields []string
}

// Error implements error
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%v: missing required fields: %s", domain.ErrValidation, strings.Join(e.Fields, ", "))
}

// Unwrap allows errors.Is(err, domain.ErrValidation)
func (e *MissingFieldsError) Unwrap() error {
	return domain.ErrValidation
}
