package memory

import (
	"context"
	"sort"

	"github.com/m04kA/table-buddy/internal/domain"
	tableRepo "github.com/m04kA/table-buddy/internal/infra/storage/table"
)

// TableRepository каталог столов в памяти
type TableRepository struct {
	store *Store
}

// GetWithCapacityAtLeast возвращает доступные столы вместимостью не меньше partySize, по возрастанию id
func (r *TableRepository) GetWithCapacityAtLeast(_ context.Context, partySize int) ([]*domain.Table, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return domain.FilterEligible(r.sorted(), partySize), nil
}

// GetAll возвращает все столы
func (r *TableRepository) GetAll(_ context.Context) ([]*domain.Table, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sorted(), nil
}

// GetByID получает стол по ID
func (r *TableRepository) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return copyTable(t), nil
}

// Create добавляет стол
func (r *TableRepository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTableID++
	now := r.store.now()

	table.ID = r.store.nextTableID
	table.CreatedAt = now
	table.UpdatedAt = now
	r.store.tables[table.ID] = copyTable(table)

	id := table.ID
	r.store.onRollback(ctx, func() { delete(r.store.tables, id) })

	return table, nil
}

// UpdateStatus обновляет административный статус стола
func (r *TableRepository) UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tables[id]
	if !ok {
		return tableRepo.ErrTableNotFound
	}

	prevStatus, prevUpdatedAt := t.Status, t.UpdatedAt
	r.store.onRollback(ctx, func() { t.Status, t.UpdatedAt = prevStatus, prevUpdatedAt })

	t.Status = status
	t.UpdatedAt = r.store.now()
	return nil
}

func (r *TableRepository) sorted() []*domain.Table {
	result := make([]*domain.Table, 0, len(r.store.tables))
	for _, t := range r.store.tables {
		result = append(result, copyTable(t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
