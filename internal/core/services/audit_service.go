package services

import (
	"context"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
)

const defaultAuditLimit = 100

// auditService implements AuditSvcFacade.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new audit trail service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) ListAuditLog(ctx context.Context, limit int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return s.auditRepo.ListAuditLog(ctx, limit)
}
