package repositories

import (
	"context"
	"sync"

	"operaty-system/internal/entities"
	apperrors "operaty-system/pkg/errors"
)

type ZlecenieRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.Zlecenie, error)
	FindByID(ctx context.Context, id string) (*entities.Zlecenie, error)
	Create(ctx context.Context, zlecenie *entities.Zlecenie) error
	Update(ctx context.Context, zlecenie *entities.Zlecenie) error
}

// ZlecenieRepository trzyma całą kolekcję zleceń w pamięci procesu.
// To jedyne źródło prawdy o zleceniach; stan znika przy restarcie i tak ma być.
// Rekordy wchodzą i wychodzą wyłącznie jako kopie, więc mutacje są zawsze
// atomową podmianą przez Update.
type ZlecenieRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entities.Zlecenie
	order []string // najnowsze na początku, jak na tablicy leadów
}

func NewZlecenieRepository() ZlecenieRepositoryInterface {
	return &ZlecenieRepository{
		byID: make(map[string]*entities.Zlecenie),
	}
}

func (r *ZlecenieRepository) GetAll(ctx context.Context) ([]*entities.Zlecenie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Zlecenie, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id].Clone())
	}
	return result, nil
}

func (r *ZlecenieRepository) FindByID(ctx context.Context, id string) (*entities.Zlecenie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	zlecenie, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return zlecenie.Clone(), nil
}

func (r *ZlecenieRepository) Create(ctx context.Context, zlecenie *entities.Zlecenie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[zlecenie.ID]; exists {
		return apperrors.NewInvalidInputError("zlecenie o identyfikatorze %s już istnieje", zlecenie.ID)
	}
	r.byID[zlecenie.ID] = zlecenie.Clone()
	r.order = append([]string{zlecenie.ID}, r.order...)
	return nil
}

func (r *ZlecenieRepository) Update(ctx context.Context, zlecenie *entities.Zlecenie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[zlecenie.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[zlecenie.ID] = zlecenie.Clone()
	return nil
}
