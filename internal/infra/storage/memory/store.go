// Package memory хранилище в памяти процесса. Реализует те же контракты, что и
// PostgreSQL-репозитории, и используется в тестах и при database.driver = "memory".
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
)

// Store общее состояние для всех репозиториев пакета
type Store struct {
	mu sync.RWMutex

	tables       map[int64]*domain.Table
	reservations map[int64]*domain.Reservation
	hours        map[string]*domain.OperatingHours
	turnaround   *int

	nextTableID       int64
	nextReservationID int64

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		tables:       make(map[int64]*domain.Table),
		reservations: make(map[int64]*domain.Reservation),
		hours:        make(map[string]*domain.OperatingHours),
		now:          time.Now,
	}
}

// Tables возвращает репозиторий столов
func (s *Store) Tables() *TableRepository {
	return &TableRepository{store: s}
}

// Reservations возвращает репозиторий бронирований
func (s *Store) Reservations() *ReservationRepository {
	return &ReservationRepository{store: s}
}

// Settings возвращает репозиторий настроек
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{store: s}
}

// onRollback регистрирует отмену записи, если запись сделана внутри транзакции TxManager.
// Вызывается под s.mu; undo выполняется при откате под той же блокировкой.
func (s *Store) onRollback(ctx context.Context, undo func()) {
	j, ok := ctx.Value(txKey{}).(*journal)
	if !ok {
		return
	}
	j.undo = append(j.undo, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		undo()
	})
}

func copyTable(t *domain.Table) *domain.Table {
	c := *t
	return &c
}

func copyReservation(r *domain.Reservation) *domain.Reservation {
	c := *r
	return &c
}

func copyHours(h *domain.OperatingHours) *domain.OperatingHours {
	c := *h
	return &c
}
