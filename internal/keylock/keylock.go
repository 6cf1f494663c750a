// Package keylock maps user keys to process-lifetime mutexes so that all
// writers for the same key serialize through the same lock while writers for
// different keys stay independent.
package keylock

import "sync"

// Registry lazily creates one mutex per user key and retains it for the
// lifetime of the process. Entries are never evicted, so the registry grows
// by one mutex per distinct key ever seen.
type Registry struct {
	locks sync.Map // userID -> *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Get returns the mutex for userID, creating it on first demand. Concurrent
// first-time callers for the same key race through LoadOrStore, so exactly
// one mutex survives and every caller gets that same instance.
func (r *Registry) Get(userID int64) *sync.Mutex {
	if mu, ok := r.locks.Load(userID); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := r.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
