package repository

import (
	"context"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// ContractRepository defines the interface for employment contract data
// access. Contracts are hard-deleted.
type ContractRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Contract, error)
	List(ctx context.Context, query *ListQuery) ([]models.Contract, int64, error)
	FindExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Contract, error)
	Create(ctx context.Context, tx *gorm.DB, contract *models.Contract) error
	Save(ctx context.Context, tx *gorm.DB, contract *models.Contract) error
	Delete(ctx context.Context, tx *gorm.DB, contract *models.Contract) error
}

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Creator").
		Preload("Updater").
		First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) List(ctx context.Context, query *ListQuery) ([]models.Contract, int64, error) {
	var contracts []models.Contract
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Contract{})

	if query.Filters["id_empleado"] != "" {
		db = db.Where("id_empleado = ?", query.Filters["id_empleado"])
	}
	if query.Filters["tipo_contrato"] != "" {
		db = db.Where("tipo_contrato = ?", query.Filters["tipo_contrato"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Employee").
		Order("fecha_inicio DESC").
		Find(&contracts).Error
	return contracts, total, err
}

// FindExpiringBefore returns contracts with an end date between now and the
// deadline, used by the expiry notification job.
func (r *contractRepository) FindExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("fecha_fin IS NOT NULL AND fecha_fin BETWEEN ? AND ?", time.Now(), deadline).
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) Create(ctx context.Context, tx *gorm.DB, contract *models.Contract) error {
	return tx.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) Save(ctx context.Context, tx *gorm.DB, contract *models.Contract) error {
	return tx.WithContext(ctx).Save(contract).Error
}

func (r *contractRepository) Delete(ctx context.Context, tx *gorm.DB, contract *models.Contract) error {
	return tx.WithContext(ctx).Delete(contract).Error
}
