package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// EvaluationRepository defines the interface for performance evaluation data access.
// Evaluations soft-delete through the activo flag; their detail rows are
// replaced wholesale when the evaluation is rescored.
type EvaluationRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.Evaluation, error)
	List(ctx context.Context, query *ListQuery) ([]models.Evaluation, int64, error)
	Create(ctx context.Context, tx *gorm.DB, evaluation *models.Evaluation) error
	Save(ctx context.Context, tx *gorm.DB, evaluation *models.Evaluation) error
	CreateDetails(ctx context.Context, tx *gorm.DB, details []models.EvaluationDetail) error
	ReplaceDetails(ctx context.Context, tx *gorm.DB, evaluationID uint, details []models.EvaluationDetail) error
}

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) FindActiveByID(ctx context.Context, id uint) (*models.Evaluation, error) {
	var evaluation models.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Details").
		Preload("Details.Criterion").
		Where("activo = ?", true).
		First(&evaluation, id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) List(ctx context.Context, query *ListQuery) ([]models.Evaluation, int64, error) {
	var evaluations []models.Evaluation
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Evaluation{}).Where("activo = ?", true)

	if query.Filters["id_empleado"] != "" {
		db = db.Where("id_empleado = ?", query.Filters["id_empleado"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Employee").
		Order("fecha_evaluacion DESC").
		Find(&evaluations).Error
	return evaluations, total, err
}

func (r *evaluationRepository) Create(ctx context.Context, tx *gorm.DB, evaluation *models.Evaluation) error {
	return tx.WithContext(ctx).Omit("Details", "Employee").Create(evaluation).Error
}

func (r *evaluationRepository) Save(ctx context.Context, tx *gorm.DB, evaluation *models.Evaluation) error {
	return tx.WithContext(ctx).Omit("Details", "Employee").Save(evaluation).Error
}

func (r *evaluationRepository) CreateDetails(ctx context.Context, tx *gorm.DB, details []models.EvaluationDetail) error {
	if len(details) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&details).Error
}

func (r *evaluationRepository) ReplaceDetails(ctx context.Context, tx *gorm.DB, evaluationID uint, details []models.EvaluationDetail) error {
	err := tx.WithContext(ctx).
		Where("id_evaluacion = ?", evaluationID).
		Delete(&models.EvaluationDetail{}).Error
	if err != nil {
		return err
	}
	return r.CreateDetails(ctx, tx, details)
}

// CriterionRepository defines the interface for evaluation criteria data access.
// Criteria soft-delete through the activo flag.
type CriterionRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.Criterion, error)
	ListActive(ctx context.Context) ([]models.Criterion, error)
	List(ctx context.Context, query *ListQuery) ([]models.Criterion, int64, error)
	Create(ctx context.Context, tx *gorm.DB, criterion *models.Criterion) error
	Save(ctx context.Context, tx *gorm.DB, criterion *models.Criterion) error
}

type criterionRepository struct {
	db *gorm.DB
}

// NewCriterionRepository creates a new criterion repository
func NewCriterionRepository(db *gorm.DB) CriterionRepository {
	return &criterionRepository{db: db}
}

func (r *criterionRepository) FindActiveByID(ctx context.Context, id uint) (*models.Criterion, error) {
	var criterion models.Criterion
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		First(&criterion, id).Error
	if err != nil {
		return nil, err
	}
	return &criterion, nil
}

func (r *criterionRepository) ListActive(ctx context.Context) ([]models.Criterion, error) {
	var criteria []models.Criterion
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre_criterio ASC").
		Find(&criteria).Error
	return criteria, err
}

func (r *criterionRepository) List(ctx context.Context, query *ListQuery) ([]models.Criterion, int64, error) {
	var criteria []models.Criterion
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Criterion{}).Where("activo = ?", true)

	if query.Search != "" {
		db = db.Where("nombre_criterio ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Order("nombre_criterio ASC").
		Find(&criteria).Error
	return criteria, total, err
}

func (r *criterionRepository) Create(ctx context.Context, tx *gorm.DB, criterion *models.Criterion) error {
	return tx.WithContext(ctx).Create(criterion).Error
}

func (r *criterionRepository) Save(ctx context.Context, tx *gorm.DB, criterion *models.Criterion) error {
	return tx.WithContext(ctx).Save(criterion).Error
}
