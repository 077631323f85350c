package repositories

import (
	"context"
	"sync"

	"operaty-system/internal/entities"
)

type AuditRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.AuditLogEntry, error)
	Create(ctx context.Context, entry *entities.AuditLogEntry) error
}

// AuditRepository - dziennik "append-only": wpisy tylko dochodzą, najnowsze
// na początku, żaden wpis nie jest nigdy zmieniany ani usuwany.
type AuditRepository struct {
	mu    sync.RWMutex
	items []*entities.AuditLogEntry
}

func NewAuditRepository() AuditRepositoryInterface {
	return &AuditRepository{}
}

func (r *AuditRepository) GetAll(ctx context.Context) ([]*entities.AuditLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.AuditLogEntry, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		result = append(result, &cp)
	}
	return result, nil
}

func (r *AuditRepository) Create(ctx context.Context, entry *entities.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	r.items = append([]*entities.AuditLogEntry{&cp}, r.items...)
	return nil
}
