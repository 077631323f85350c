// Plik: internal/services/audit_service.go
package services

import (
	"context"

	"operaty-system/internal/entities"
	"operaty-system/internal/repositories"
)

type AuditServiceInterface interface {
	GetAuditLog(ctx context.Context) ([]*entities.AuditLogEntry, error)
}

type AuditService struct {
	auditRepo repositories.AuditRepositoryInterface
}

func NewAuditService(auditRepo repositories.AuditRepositoryInterface) AuditServiceInterface {
	return &AuditService{auditRepo: auditRepo}
}

func (s *AuditService) GetAuditLog(ctx context.Context) ([]*entities.AuditLogEntry, error) {
	return s.auditRepo.GetAll(ctx)
}
