// Plik: internal/services/notification_service.go
package services

import (
	"context"

	"operaty-system/internal/entities"
	"operaty-system/internal/repositories"
)

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
}

func NewNotificationService(notificationRepo repositories.NotificationRepositoryInterface) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) GetNotifications(ctx context.Context) ([]*entities.Notification, error) {
	return s.notificationRepo.GetAll(ctx)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllRead(ctx)
}
