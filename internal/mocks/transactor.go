package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashdeck/internal/store"
)

// MockTransactor implements store.Transactor for testing. By default it
// calls fn with a nil *sql.Tx and counts commits and rollbacks by whether
// fn returned an error.
type MockTransactor struct {
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error

	mu         sync.Mutex
	Committed  int
	RolledBack int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTransaction implements the store.Transactor interface
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}

	err := fn(ctx, nil)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}
