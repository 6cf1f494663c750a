package repository

import (
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/models"
)

// Balances holds one current balance per user key. Get and Put are each
// atomic individually; cross-call atomicity is the point service's job.
type Balances interface {
	// Get returns the stored balance, or a zero-amount record for a key
	// that has never been written.
	Get(userID int64) (models.Balance, error)
	// Put stores the new amount and returns the stored record with its
	// update timestamp.
	Put(userID int64, amount int64) (models.Balance, error)
}

// Transactions is the append-only, insertion-ordered history per user key.
type Transactions interface {
	Append(tx models.Transaction) error
	ListByUser(userID int64) ([]models.Transaction, error)
}

type AuditLogs interface {
	Create(l models.AuditLog) error
}
