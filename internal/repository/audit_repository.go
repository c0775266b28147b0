package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// AuditRepository is the append-only audit store. It deliberately exposes no
// update or delete methods: audit rows are immutable once written.
type AuditRepository interface {
	// Append writes one entry through tx so it participates in the caller's
	// transaction. Pass the base *gorm.DB for writes outside any transaction
	// (e.g. failed-login entries).
	Append(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error
	List(ctx context.Context, query *ListQuery) ([]models.AuditEntry, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error {
	return tx.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) List(ctx context.Context, query *ListQuery) ([]models.AuditEntry, int64, error) {
	var entries []models.AuditEntry
	var total int64

	db := r.db.WithContext(ctx).Model(&models.AuditEntry{})

	if query.Filters["tabla_afectada"] != "" {
		db = db.Where("tabla_afectada = ?", query.Filters["tabla_afectada"])
	}
	if query.Filters["accion"] != "" {
		db = db.Where("accion = ?", query.Filters["accion"])
	}
	if query.Filters["usuario"] != "" {
		db = db.Where("usuario = ?", query.Filters["usuario"])
	}
	if query.Search != "" {
		db = db.Where("descripcion ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("User").
		Order("fecha DESC").
		Find(&entries).Error
	return entries, total, err
}
