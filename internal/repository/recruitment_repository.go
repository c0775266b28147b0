package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// VacancyRepository defines the interface for job vacancy data access.
// Vacancies are hard-deleted.
type VacancyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Vacancy, error)
	List(ctx context.Context, query *ListQuery) ([]models.Vacancy, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, vacancy *models.Vacancy) error
	Save(ctx context.Context, tx *gorm.DB, vacancy *models.Vacancy) error
	Delete(ctx context.Context, tx *gorm.DB, vacancy *models.Vacancy) error
}

type vacancyRepository struct {
	db *gorm.DB
}

// NewVacancyRepository creates a new vacancy repository
func NewVacancyRepository(db *gorm.DB) VacancyRepository {
	return &vacancyRepository{db: db}
}

func (r *vacancyRepository) FindByID(ctx context.Context, id uint) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	err := r.db.WithContext(ctx).
		Preload("Position").
		First(&vacancy, id).Error
	if err != nil {
		return nil, err
	}
	return &vacancy, nil
}

func (r *vacancyRepository) List(ctx context.Context, query *ListQuery) ([]models.Vacancy, int64, error) {
	var vacancies []models.Vacancy
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Vacancy{})

	if query.Search != "" {
		db = db.Where("titulo ILIKE ?", "%"+query.Search+"%")
	}
	if query.Filters["estado"] != "" {
		db = db.Where("estado = ?", query.Filters["estado"])
	}
	if query.Filters["id_puesto"] != "" {
		db = db.Where("id_puesto = ?", query.Filters["id_puesto"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Position").
		Order("fecha_publicacion DESC").
		Find(&vacancies).Error
	return vacancies, total, err
}

func (r *vacancyRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Vacancy{}).
		Where("estado = ?", status).
		Count(&total).Error
	return total, err
}

func (r *vacancyRepository) Create(ctx context.Context, tx *gorm.DB, vacancy *models.Vacancy) error {
	return tx.WithContext(ctx).Create(vacancy).Error
}

func (r *vacancyRepository) Save(ctx context.Context, tx *gorm.DB, vacancy *models.Vacancy) error {
	return tx.WithContext(ctx).Save(vacancy).Error
}

func (r *vacancyRepository) Delete(ctx context.Context, tx *gorm.DB, vacancy *models.Vacancy) error {
	return tx.WithContext(ctx).Delete(vacancy).Error
}

// CandidateRepository defines the interface for candidate data access.
// Candidates are hard-deleted.
type CandidateRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Candidate, error)
	List(ctx context.Context, query *ListQuery) ([]models.Candidate, int64, error)
	Create(ctx context.Context, tx *gorm.DB, candidate *models.Candidate) error
	Save(ctx context.Context, tx *gorm.DB, candidate *models.Candidate) error
	Delete(ctx context.Context, tx *gorm.DB, candidate *models.Candidate) error
}

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) FindByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&candidate, id).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) List(ctx context.Context, query *ListQuery) ([]models.Candidate, int64, error) {
	var candidates []models.Candidate
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Candidate{})

	if query.Filters["estado_candidatura"] != "" {
		db = db.Where("estado_candidatura = ?", query.Filters["estado_candidatura"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Employee").
		Order("fecha_creacion DESC").
		Find(&candidates).Error
	return candidates, total, err
}

func (r *candidateRepository) Create(ctx context.Context, tx *gorm.DB, candidate *models.Candidate) error {
	return tx.WithContext(ctx).Create(candidate).Error
}

func (r *candidateRepository) Save(ctx context.Context, tx *gorm.DB, candidate *models.Candidate) error {
	return tx.WithContext(ctx).Save(candidate).Error
}

func (r *candidateRepository) Delete(ctx context.Context, tx *gorm.DB, candidate *models.Candidate) error {
	return tx.WithContext(ctx).Delete(candidate).Error
}

// ApplicationRepository defines the interface for application data access.
// Applications soft-delete through the activo flag.
type ApplicationRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.Application, error)
	List(ctx context.Context, query *ListQuery) ([]models.Application, int64, error)
	Create(ctx context.Context, tx *gorm.DB, application *models.Application) error
	Save(ctx context.Context, tx *gorm.DB, application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindActiveByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Vacancy").
		Preload("Candidate").
		Preload("Candidate.Employee").
		Where("activo = ?", true).
		First(&application, id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context, query *ListQuery) ([]models.Application, int64, error) {
	var applications []models.Application
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Application{}).Where("activo = ?", true)

	if query.Filters["id_vacante"] != "" {
		db = db.Where("id_vacante = ?", query.Filters["id_vacante"])
	}
	if query.Filters["estado_aplicacion"] != "" {
		db = db.Where("estado_aplicacion = ?", query.Filters["estado_aplicacion"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Vacancy").
		Preload("Candidate").
		Order("fecha_aplicacion DESC").
		Find(&applications).Error
	return applications, total, err
}

func (r *applicationRepository) Create(ctx context.Context, tx *gorm.DB, application *models.Application) error {
	return tx.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) Save(ctx context.Context, tx *gorm.DB, application *models.Application) error {
	return tx.WithContext(ctx).Save(application).Error
}
