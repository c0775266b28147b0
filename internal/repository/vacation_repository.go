package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// VacationRepository defines the interface for vacation request data
// access. Vacations carry no activo flag and are hard-deleted.
type VacationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Vacation, error)
	List(ctx context.Context, query *ListQuery) ([]models.Vacation, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, vacation *models.Vacation) error
	Save(ctx context.Context, tx *gorm.DB, vacation *models.Vacation) error
	Delete(ctx context.Context, tx *gorm.DB, vacation *models.Vacation) error
}

type vacationRepository struct {
	db *gorm.DB
}

// NewVacationRepository creates a new vacation repository
func NewVacationRepository(db *gorm.DB) VacationRepository {
	return &vacationRepository{db: db}
}

func (r *vacationRepository) FindByID(ctx context.Context, id uint) (*models.Vacation, error) {
	var vacation models.Vacation
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Creator").
		Preload("Updater").
		First(&vacation, id).Error
	if err != nil {
		return nil, err
	}
	return &vacation, nil
}

func (r *vacationRepository) List(ctx context.Context, query *ListQuery) ([]models.Vacation, int64, error) {
	var vacations []models.Vacation
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Vacation{})

	if query.Filters["id_empleado"] != "" {
		db = db.Where("id_empleado = ?", query.Filters["id_empleado"])
	}
	if query.Filters["estado"] != "" {
		db = db.Where("estado = ?", query.Filters["estado"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Employee").
		Order("fecha_inicio DESC").
		Find(&vacations).Error
	return vacations, total, err
}

func (r *vacationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Vacation{}).
		Where("estado = ?", status).
		Count(&total).Error
	return total, err
}

func (r *vacationRepository) Create(ctx context.Context, tx *gorm.DB, vacation *models.Vacation) error {
	return tx.WithContext(ctx).Create(vacation).Error
}

func (r *vacationRepository) Save(ctx context.Context, tx *gorm.DB, vacation *models.Vacation) error {
	return tx.WithContext(ctx).Save(vacation).Error
}

func (r *vacationRepository) Delete(ctx context.Context, tx *gorm.DB, vacation *models.Vacation) error {
	return tx.WithContext(ctx).Delete(vacation).Error
}
