package models

import "time"

// Balance is the current point balance for one user key. Only the point
// service mutates it, and only while holding that key's lock.
type Balance struct {
	UserID        int64     `json:"user_id"`
	Amount        int64     `json:"amount"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
