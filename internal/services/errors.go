package services

import "errors"

// Rejections callers are expected to branch on with errors.Is. Both leave
// balance and history untouched.
var (
	ErrInvalidAmount       = errors.New("amount must be > 0")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
