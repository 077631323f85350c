package repositories

import (
	"context"
	"sync"

	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
	apperrors "operaty-system/pkg/errors"
)

type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAppraisers(ctx context.Context) ([]*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, user *entities.User) error
}

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entities.User
	order []string
}

func NewUserRepository() UserRepositoryInterface {
	return &UserRepository{
		byID: make(map[string]*entities.User),
	}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id].Clone())
	}
	return result, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user.Clone(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.byID[id].Email == email {
			return r.byID[id].Clone(), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) GetAppraisers(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.User, 0)
	for _, id := range r.order {
		if r.byID[id].Role == constants.RoleRzeczoznawca {
			result = append(result, r.byID[id].Clone())
		}
	}
	return result, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[user.ID]; exists {
		return apperrors.NewInvalidInputError("użytkownik o identyfikatorze %s już istnieje", user.ID)
	}
	for _, id := range r.order {
		if r.byID[id].Email == user.Email {
			return apperrors.NewInvalidInputError("użytkownik z adresem %s już istnieje", user.Email)
		}
	}
	r.byID[user.ID] = user.Clone()
	r.order = append(r.order, user.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[user.ID] = user.Clone()
	return nil
}
