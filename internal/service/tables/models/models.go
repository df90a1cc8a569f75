package models

import (
	"fmt"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
)

// CreateTableRequest запрос на добавление стола
type CreateTableRequest struct {
	Capacity int     `json:"capacity"`
	Status   *string `json:"status,omitempty"` // по умолчанию available
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *CreateTableRequest) ToDomain() (*domain.Table, error) {
	if r.Capacity < domain.MinTableCapacity || r.Capacity > domain.MaxTableCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d",
			domain.ErrValidation, domain.MinTableCapacity, domain.MaxTableCapacity)
	}

	status := domain.TableStatusAvailable
	if r.Status != nil {
		parsed, err := domain.ParseTableStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	return &domain.Table{Capacity: r.Capacity, Status: status}, nil
}

// UpdateTableStatusRequest запрос на смену статуса стола
type UpdateTableStatusRequest struct {
	Status string `json:"status"`
}

// TableResponse ответ с данными стола
type TableResponse struct {
	ID        int64     `json:"id"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainTable конвертирует domain модель в response
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:        t.ID,
		Capacity:  t.Capacity,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTables конвертирует список столов
func FromDomainTables(tables []*domain.Table) []*TableResponse {
	result := make([]*TableResponse, len(tables))
	for i, t := range tables {
		result[i] = FromDomainTable(t)
	}
	return result
}
