package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// WellnessRepository defines the interface for wellness activity data access.
// Activities soft-delete through the activo flag.
type WellnessRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.WellnessActivity, error)
	List(ctx context.Context, query *ListQuery) ([]models.WellnessActivity, int64, error)
	Create(ctx context.Context, tx *gorm.DB, activity *models.WellnessActivity) error
	Save(ctx context.Context, tx *gorm.DB, activity *models.WellnessActivity) error
}

type wellnessRepository struct {
	db *gorm.DB
}

// NewWellnessRepository creates a new wellness repository
func NewWellnessRepository(db *gorm.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

func (r *wellnessRepository) FindActiveByID(ctx context.Context, id uint) (*models.WellnessActivity, error) {
	var activity models.WellnessActivity
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *wellnessRepository) List(ctx context.Context, query *ListQuery) ([]models.WellnessActivity, int64, error) {
	var activities []models.WellnessActivity
	var total int64

	db := r.db.WithContext(ctx).Model(&models.WellnessActivity{}).Where("activo = ?", true)

	if query.Search != "" {
		db = db.Where("nombre_actividad ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Order("fecha_actividad DESC").
		Find(&activities).Error
	return activities, total, err
}

func (r *wellnessRepository) Create(ctx context.Context, tx *gorm.DB, activity *models.WellnessActivity) error {
	return tx.WithContext(ctx).Create(activity).Error
}

func (r *wellnessRepository) Save(ctx context.Context, tx *gorm.DB, activity *models.WellnessActivity) error {
	return tx.WithContext(ctx).Save(activity).Error
}
