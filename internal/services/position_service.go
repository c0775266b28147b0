package services

import (
	"context"
	"errors"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// PositionService handles job positions and their academic careers
type PositionService struct {
	positionRepo repository.PositionRepository
	careerRepo   repository.CareerRepository
	db           *gorm.DB
	recorder     *audit.Recorder
}

func NewPositionService(positionRepo repository.PositionRepository, careerRepo repository.CareerRepository, db *gorm.DB, recorder *audit.Recorder) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
		careerRepo:   careerRepo,
		db:           db,
		recorder:     recorder,
	}
}

// UpdatePositionInput carries the optional fields of a position update
type UpdatePositionInput struct {
	Name       *string
	BaseSalary *float64
	CareerID   *uint
}

func (s *PositionService) FindByID(ctx context.Context, id uint) (*models.Position, error) {
	position, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return position, nil
}

func (s *PositionService) List(ctx context.Context, query *repository.ListQuery) ([]models.Position, int64, error) {
	return s.positionRepo.List(ctx, query)
}

func (s *PositionService) Create(ctx context.Context, position *models.Position, actor *audit.Actor) error {
	if position.BaseSalary < 0 {
		return errors.New("el salario base no puede ser negativo")
	}
	if actor != nil {
		position.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.positionRepo.Create(ctx, tx, position); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, position, actor)
	})
}

func (s *PositionService) Update(ctx context.Context, id uint, input UpdatePositionInput, actor *audit.Actor) (*models.Position, error) {
	position, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(position)

	if input.Name != nil {
		position.Name = *input.Name
	}
	if input.BaseSalary != nil {
		if *input.BaseSalary < 0 {
			return nil, errors.New("el salario base no puede ser negativo")
		}
		position.BaseSalary = *input.BaseSalary
	}
	if input.CareerID != nil {
		position.CareerID = input.CareerID
	}
	if actor != nil {
		position.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.positionRepo.Save(ctx, tx, position); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, position, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return position, nil
}

// Delete removes a position permanently; puestos carries no activo flag.
func (s *PositionService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	position, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.positionRepo.Delete(ctx, tx, position); err != nil {
			return err
		}
		return s.recorder.AfterDelete(ctx, tx, position, actor)
	})
}

func (s *PositionService) FindCareerByID(ctx context.Context, id uint) (*models.Career, error) {
	career, err := s.careerRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return career, nil
}

func (s *PositionService) ListCareers(ctx context.Context, query *repository.ListQuery) ([]models.Career, int64, error) {
	return s.careerRepo.List(ctx, query)
}

func (s *PositionService) CreateCareer(ctx context.Context, career *models.Career, actor *audit.Actor) error {
	career.Active = true
	if actor != nil {
		career.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.careerRepo.Create(ctx, tx, career); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, career, actor)
	})
}

func (s *PositionService) UpdateCareer(ctx context.Context, id uint, name string, actor *audit.Actor) (*models.Career, error) {
	career, err := s.FindCareerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(career)

	career.Name = name
	if actor != nil {
		career.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.careerRepo.Save(ctx, tx, career); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, career, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return career, nil
}

// DeleteCareer deactivates the career; positions keep pointing at the row.
func (s *PositionService) DeleteCareer(ctx context.Context, id uint, actor *audit.Actor) error {
	career, err := s.FindCareerByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(career)

	career.Active = false
	if actor != nil {
		career.UpdatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.careerRepo.Save(ctx, tx, career); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, career, previous, actor)
	})
}
