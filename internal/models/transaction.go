package models

import "time"

type TransactionType string

const (
	TxnCharge TransactionType = "charge"
	TxnUse    TransactionType = "use"
)

// Transaction is one committed history entry. Immutable once appended;
// ordering within a user's history is commit order.
type Transaction struct {
	UserID    int64           `json:"user_id"`
	Amount    int64           `json:"amount"`
	Type      TransactionType `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}
