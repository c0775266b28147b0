package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// EvaluationService handles performance evaluations and their criteria.
// An evaluation's total score is always the sum of its detail scores.
type EvaluationService struct {
	repo          repository.EvaluationRepository
	criterionRepo repository.CriterionRepository
	employeeRepo  repository.EmployeeRepository
	db            *gorm.DB
	recorder      *audit.Recorder
}

func NewEvaluationService(
	repo repository.EvaluationRepository,
	criterionRepo repository.CriterionRepository,
	employeeRepo repository.EmployeeRepository,
	db *gorm.DB,
	recorder *audit.Recorder,
) *EvaluationService {
	return &EvaluationService{
		repo:          repo,
		criterionRepo: criterionRepo,
		employeeRepo:  employeeRepo,
		db:            db,
		recorder:      recorder,
	}
}

// ScoreInput is one criterion score inside an evaluation
type ScoreInput struct {
	CriterionID uint    `json:"id_criterio" binding:"required"`
	Score       float64 `json:"puntuacion"`
}

func (s *EvaluationService) FindByID(ctx context.Context, id uint) (*models.Evaluation, error) {
	evaluation, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return evaluation, nil
}

func (s *EvaluationService) List(ctx context.Context, query *repository.ListQuery) ([]models.Evaluation, int64, error) {
	return s.repo.List(ctx, query)
}

// Create stores an evaluation together with its criterion scores in one
// transaction. The total score is derived from the scores, never accepted
// from the caller.
func (s *EvaluationService) Create(ctx context.Context, evaluation *models.Evaluation, scores []ScoreInput, actor *audit.Actor) error {
	if _, err := s.employeeRepo.FindActiveByID(ctx, evaluation.EmployeeID); err != nil {
		return errors.New("empleado no encontrado")
	}

	details, total, err := s.buildDetails(ctx, scores, actor)
	if err != nil {
		return err
	}

	evaluation.Active = true
	evaluation.TotalScore = &total
	if actor != nil {
		evaluation.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, evaluation); err != nil {
			return err
		}
		for i := range details {
			details[i].EvaluationID = evaluation.ID
		}
		if err := s.repo.CreateDetails(ctx, tx, details); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, evaluation, actor)
	})
}

// Rescore replaces the evaluation's detail rows and re-derives the total.
func (s *EvaluationService) Rescore(ctx context.Context, id uint, scores []ScoreInput, actor *audit.Actor) (*models.Evaluation, error) {
	evaluation, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(evaluation)

	details, total, err := s.buildDetails(ctx, scores, actor)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].EvaluationID = evaluation.ID
	}

	evaluation.TotalScore = &total
	evaluation.Details = nil

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.ReplaceDetails(ctx, tx, evaluation.ID, details); err != nil {
			return err
		}
		if err := s.repo.Save(ctx, tx, evaluation); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, evaluation, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	evaluation.Details = details
	return evaluation, nil
}

// Delete deactivates the evaluation; its detail rows stay for history.
func (s *EvaluationService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	evaluation, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(evaluation)

	evaluation.Active = false
	evaluation.Details = nil

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, evaluation); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, evaluation, previous, actor)
	})
}

func (s *EvaluationService) buildDetails(ctx context.Context, scores []ScoreInput, actor *audit.Actor) ([]models.EvaluationDetail, float64, error) {
	details := make([]models.EvaluationDetail, 0, len(scores))
	total := 0.0
	for _, score := range scores {
		if score.Score < 0 {
			return nil, 0, fmt.Errorf("%w: la puntuación no puede ser negativa", ErrValidation)
		}
		if _, err := s.criterionRepo.FindActiveByID(ctx, score.CriterionID); err != nil {
			return nil, 0, fmt.Errorf("criterio %d no encontrado", score.CriterionID)
		}
		detail := models.EvaluationDetail{
			CriterionID: score.CriterionID,
			Score:       score.Score,
		}
		if actor != nil {
			detail.CreatedBy = &actor.ID
		}
		details = append(details, detail)
		total += score.Score
	}
	return details, total, nil
}

func (s *EvaluationService) FindCriterionByID(ctx context.Context, id uint) (*models.Criterion, error) {
	criterion, err := s.criterionRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return criterion, nil
}

func (s *EvaluationService) ListCriteria(ctx context.Context, query *repository.ListQuery) ([]models.Criterion, int64, error) {
	return s.criterionRepo.List(ctx, query)
}

func (s *EvaluationService) CreateCriterion(ctx context.Context, criterion *models.Criterion, actor *audit.Actor) error {
	criterion.Active = true
	if actor != nil {
		criterion.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.criterionRepo.Create(ctx, tx, criterion); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, criterion, actor)
	})
}

func (s *EvaluationService) UpdateCriterion(ctx context.Context, id uint, name *string, description *string, actor *audit.Actor) (*models.Criterion, error) {
	criterion, err := s.FindCriterionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(criterion)

	if name != nil {
		criterion.Name = *name
	}
	if description != nil {
		criterion.Description = description
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.criterionRepo.Save(ctx, tx, criterion); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, criterion, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return criterion, nil
}

// DeleteCriterion deactivates the criterion; past evaluations keep their
// detail rows pointing at it.
func (s *EvaluationService) DeleteCriterion(ctx context.Context, id uint, actor *audit.Actor) error {
	criterion, err := s.FindCriterionByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(criterion)

	criterion.Active = false

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.criterionRepo.Save(ctx, tx, criterion); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, criterion, previous, actor)
	})
}
