package domain

import (
	"fmt"
	"time"
)

// TableStatus административный статус стола
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

// ParseTableStatus converts a raw string into a known table status
func ParseTableStatus(s string) (TableStatus, error) {
	switch status := TableStatus(s); status {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown table status %q", ErrValidation, s)
	}
}

// Table represents a physical table in the restaurant
type Table struct {
	ID       int64
	Capacity int
	Status   TableStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the table is not administratively taken out of service
func (t *Table) IsAvailable() bool {
	return t.Status == TableStatusAvailable
}

// CanSeat returns true if the table seats at least partySize people
func (t *Table) CanSeat(partySize int) bool {
	return t.Capacity >= partySize
}

// FilterEligible returns tables that seat the party and are administratively available.
// Порядок исходного списка сохраняется.
func FilterEligible(tables []*Table, partySize int) []*Table {
	result := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t.IsAvailable() && t.CanSeat(partySize) {
			result = append(result, t)
		}
	}
	return result
}

// TableIDs returns ids of the tables in order
func TableIDs(tables []*Table) []int64 {
	ids := make([]int64, len(tables))
	for i, t := range tables {
		ids[i] = t.ID
	}
	return ids
}
