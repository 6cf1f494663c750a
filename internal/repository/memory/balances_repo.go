package memory

import (
	"sync"
	"time"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/models"
)

// BalancesRepo is a map-backed balance store. Each Get/Put is atomic on its
// own; it makes no cross-call guarantee.
type BalancesRepo struct {
	mu       sync.RWMutex
	balances map[int64]models.Balance
}

func NewBalancesRepo() *BalancesRepo {
	return &BalancesRepo{balances: make(map[int64]models.Balance)}
}

func (r *BalancesRepo) Get(userID int64) (models.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.balances[userID]; ok {
		return b, nil
	}
	// Never-seen key reads as a materialized zero record; nothing is
	// persisted on the read path.
	return models.Balance{UserID: userID, Amount: 0, LastUpdatedAt: time.Now()}, nil
}

func (r *BalancesRepo) Put(userID int64, amount int64) (models.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := models.Balance{UserID: userID, Amount: amount, LastUpdatedAt: time.Now()}
	r.balances[userID] = b
	return b, nil
}
