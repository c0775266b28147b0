package services

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
)

// AuditService exposes the audit trail read side. Entries are written only
// by the recorder hooks; this service never mutates them.
type AuditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(ctx context.Context, query *repository.ListQuery) ([]models.AuditEntry, int64, error) {
	return s.repo.List(ctx, query)
}
