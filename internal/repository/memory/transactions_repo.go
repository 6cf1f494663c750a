package memory

import (
	"sync"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/models"
)

// TransactionsRepo keeps an append-only history list per user key.
type TransactionsRepo struct {
	mu      sync.RWMutex
	history map[int64][]models.Transaction
}

func NewTransactionsRepo() *TransactionsRepo {
	return &TransactionsRepo{history: make(map[int64][]models.Transaction)}
}

func (r *TransactionsRepo) Append(tx models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history[tx.UserID] = append(r.history[tx.UserID], tx)
	return nil
}

// ListByUser returns a snapshot copy in insertion order, so callers never
// observe an append that lands after the read.
func (r *TransactionsRepo) ListByUser(userID int64) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.history[userID]
	out := make([]models.Transaction, len(stored))
	copy(out, stored)
	return out, nil
}
