package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/keylock"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/metrics"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/models"
	repo "github.com/Dab1n-Lee/TDD-Study-hh/internal/repository"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/worker"
)

// PointService is the only component that mutates balances or appends
// history. Charge and Use run their read-modify-write-append sequence while
// holding the user key's lock from the registry; Balance and History never
// lock.
type PointService struct {
	bal   repo.Balances
	trx   repo.Transactions
	log   repo.AuditLogs
	locks *keylock.Registry
	wp    *worker.Pool
}

func NewPointService(b repo.Balances, t repo.Transactions, l repo.AuditLogs, locks *keylock.Registry, wp *worker.Pool) *PointService {
	return &PointService{bal: b, trx: t, log: l, locks: locks, wp: wp}
}

// ----------------- Helpers -----------------

func (s *PointService) audit(userID int64, action string, amount, balance int64) {
	entityID := fmt.Sprintf("%d", userID)
	l := models.AuditLog{
		EntityType: "point",
		EntityID:   &entityID,
		Action:     action,
		Details:    map[string]any{"amount": amount, "balance": balance},
	}
	// Off the hot path: the audit trail is operational, not part of the
	// critical section's atomic unit.
	s.wp.Submit(func() { _ = s.log.Create(l) })
}

func (s *PointService) lock(userID int64) func() {
	mu := s.locks.Get(userID)
	start := time.Now()
	mu.Lock()
	metrics.LockWaitSeconds.Observe(time.Since(start).Seconds())
	return mu.Unlock
}

// ----------------- Reads -----------------

// Balance returns the current balance, a zero record for a never-seen key.
func (s *PointService) Balance(userID int64) (models.Balance, error) {
	return s.bal.Get(userID)
}

// History returns the user's committed transactions in commit order. The
// snapshot may trail writes that are still inside a critical section.
func (s *PointService) History(userID int64) ([]models.Transaction, error) {
	return s.trx.ListByUser(userID)
}

// ----------------- Charge -----------------

func (s *PointService) Charge(userID, amount int64) (models.Balance, error) {
	if amount <= 0 {
		metrics.OperationsFailed.WithLabelValues("invalid_amount").Inc()
		return models.Balance{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}

	unlock := s.lock(userID)
	defer unlock()

	current, err := s.bal.Get(userID)
	if err != nil {
		return models.Balance{}, err
	}
	updated, err := s.bal.Put(userID, current.Amount+amount)
	if err != nil {
		return models.Balance{}, err
	}
	if err := s.trx.Append(models.Transaction{
		UserID:    userID,
		Amount:    amount,
		Type:      models.TxnCharge,
		CreatedAt: time.Now(),
	}); err != nil {
		return models.Balance{}, err
	}

	metrics.OperationsTotal.WithLabelValues("charge").Inc()
	s.audit(userID, "charge", amount, updated.Amount)
	slog.Debug("point charged", "user_id", userID, "amount", amount, "balance", updated.Amount)
	return updated, nil
}

// ----------------- Use -----------------

func (s *PointService) Use(userID, amount int64) (models.Balance, error) {
	if amount <= 0 {
		metrics.OperationsFailed.WithLabelValues("invalid_amount").Inc()
		return models.Balance{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}

	unlock := s.lock(userID)
	defer unlock()

	current, err := s.bal.Get(userID)
	if err != nil {
		return models.Balance{}, err
	}
	if current.Amount < amount {
		metrics.OperationsFailed.WithLabelValues("insufficient_balance").Inc()
		slog.Warn("use rejected", "user_id", userID, "balance", current.Amount, "requested", amount)
		return models.Balance{}, fmt.Errorf("%w: have %d, want %d", ErrInsufficientBalance, current.Amount, amount)
	}
	updated, err := s.bal.Put(userID, current.Amount-amount)
	if err != nil {
		return models.Balance{}, err
	}
	if err := s.trx.Append(models.Transaction{
		UserID:    userID,
		Amount:    amount,
		Type:      models.TxnUse,
		CreatedAt: time.Now(),
	}); err != nil {
		return models.Balance{}, err
	}

	metrics.OperationsTotal.WithLabelValues("use").Inc()
	s.audit(userID, "use", amount, updated.Amount)
	slog.Debug("point used", "user_id", userID, "amount", amount, "balance", updated.Amount)
	return updated, nil
}
