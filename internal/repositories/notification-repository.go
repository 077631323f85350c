package repositories

import (
	"context"
	"sync"

	"operaty-system/internal/entities"
	apperrors "operaty-system/pkg/errors"
)

type NotificationRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.Notification, error)
	Create(ctx context.Context, notification *entities.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// NotificationRepository - powiadomienia w pamięci, najnowsze na początku listy.
type NotificationRepository struct {
	mu    sync.RWMutex
	items []*entities.Notification
}

func NewNotificationRepository() NotificationRepositoryInterface {
	return &NotificationRepository{}
}

func (r *NotificationRepository) GetAll(ctx context.Context) ([]*entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Notification, 0, len(r.items))
	for _, n := range r.items {
		cp := *n
		if n.Link != nil {
			link := *n.Link
			cp.Link = &link
		}
		result = append(result, &cp)
	}
	return result, nil
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *notification
	if notification.Link != nil {
		link := *notification.Link
		cp.Link = &link
	}
	r.items = append([]*entities.Notification{&cp}, r.items...)
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		n.IsRead = true
	}
	return nil
}
