package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// PositionRepository defines the interface for job position data access.
// Positions carry no activo flag and are hard-deleted.
type PositionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Position, error)
	List(ctx context.Context, query *ListQuery) ([]models.Position, int64, error)
	Create(ctx context.Context, tx *gorm.DB, position *models.Position) error
	Save(ctx context.Context, tx *gorm.DB, position *models.Position) error
	Delete(ctx context.Context, tx *gorm.DB, position *models.Position) error
}

type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) FindByID(ctx context.Context, id uint) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).
		Preload("Career").
		First(&position, id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *positionRepository) List(ctx context.Context, query *ListQuery) ([]models.Position, int64, error) {
	var positions []models.Position
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Position{})

	if query.Search != "" {
		db = db.Where("nombre_puesto ILIKE ?", "%"+query.Search+"%")
	}
	if query.Filters["id_carrera"] != "" {
		db = db.Where("id_carrera = ?", query.Filters["id_carrera"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Career").
		Order("nombre_puesto ASC").
		Find(&positions).Error
	return positions, total, err
}

func (r *positionRepository) Create(ctx context.Context, tx *gorm.DB, position *models.Position) error {
	return tx.WithContext(ctx).Create(position).Error
}

func (r *positionRepository) Save(ctx context.Context, tx *gorm.DB, position *models.Position) error {
	return tx.WithContext(ctx).Save(position).Error
}

func (r *positionRepository) Delete(ctx context.Context, tx *gorm.DB, position *models.Position) error {
	return tx.WithContext(ctx).Delete(position).Error
}

// CareerRepository defines the interface for career catalog data access
type CareerRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.Career, error)
	List(ctx context.Context, query *ListQuery) ([]models.Career, int64, error)
	Create(ctx context.Context, tx *gorm.DB, career *models.Career) error
	Save(ctx context.Context, tx *gorm.DB, career *models.Career) error
}

type careerRepository struct {
	db *gorm.DB
}

// NewCareerRepository creates a new career repository
func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) FindActiveByID(ctx context.Context, id uint) (*models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		First(&career, id).Error
	if err != nil {
		return nil, err
	}
	return &career, nil
}

func (r *careerRepository) List(ctx context.Context, query *ListQuery) ([]models.Career, int64, error) {
	var careers []models.Career
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Career{}).Where("activo = ?", true)

	if query.Search != "" {
		db = db.Where("nombre_carrera ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Order("nombre_carrera ASC").
		Find(&careers).Error
	return careers, total, err
}

func (r *careerRepository) Create(ctx context.Context, tx *gorm.DB, career *models.Career) error {
	return tx.WithContext(ctx).Create(career).Error
}

func (r *careerRepository) Save(ctx context.Context, tx *gorm.DB, career *models.Career) error {
	return tx.WithContext(ctx).Save(career).Error
}
