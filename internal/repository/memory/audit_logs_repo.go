package memory

import (
	"sync"
	"time"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/models"
	"github.com/google/uuid"
)

type AuditLogsRepo struct {
	mu   sync.RWMutex
	logs []models.AuditLog
}

func NewAuditLogsRepo() *AuditLogsRepo {
	return &AuditLogsRepo{}
}

func (r *AuditLogsRepo) Create(l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, l)
	return nil
}

// List returns all entries in creation order.
func (r *AuditLogsRepo) List() []models.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out
}
