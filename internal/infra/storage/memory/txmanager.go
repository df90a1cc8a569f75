package memory

import (
	"context"
	"sync"
)

type txKey struct{}

// journal операции отмены записей, сделанных внутри транзакции
type journal struct {
	undo []func()
}

// rollback отменяет записи в обратном порядке
func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// TxManager выполняет транзакции строго по одной.
// Если fn вернула ошибку, записи репозиториев этого пакета, сделанные с контекстом транзакции, откатываются.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает менеджер транзакций хранилища в памяти
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn под общим мьютексом
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	j := &journal{}
	if err := fn(context.WithValue(ctx, txKey{}, j)); err != nil {
		j.rollback()
		return err
	}
	return nil
}

// DoSerializable то же, что Do
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly то же, что Do
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
