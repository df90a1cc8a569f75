package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/table-buddy/pkg/types"
)

// ParseDate parses YYYY-MM-DD into a calendar date at UTC midnight
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrValidation, s)
	}
	return date, nil
}

// ParseTime parses HH:MM (24h)
func ParseTime(s string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: time must be in HH:MM format, got %q", ErrValidation, s)
	}
	return t, nil
}
