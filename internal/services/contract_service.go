package services

import (
	"context"
	"errors"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// ContractService handles employment contracts
type ContractService struct {
	repo         repository.ContractRepository
	employeeRepo repository.EmployeeRepository
	db           *gorm.DB
	recorder     *audit.Recorder
}

func NewContractService(repo repository.ContractRepository, employeeRepo repository.EmployeeRepository, db *gorm.DB, recorder *audit.Recorder) *ContractService {
	return &ContractService{
		repo:         repo,
		employeeRepo: employeeRepo,
		db:           db,
		recorder:     recorder,
	}
}

// UpdateContractInput carries the optional fields of a contract update
type UpdateContractInput struct {
	Type         *string
	StartDate    *time.Time
	EndDate      *time.Time
	Observations *string
}

func (s *ContractService) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) List(ctx context.Context, query *repository.ListQuery) ([]models.Contract, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ContractService) Create(ctx context.Context, contract *models.Contract, actor *audit.Actor) error {
	if !models.IsValidContractType(contract.Type) {
		return errors.New("tipo de contrato no válido")
	}
	if contract.EndDate != nil && contract.EndDate.Before(contract.StartDate) {
		return errors.New("la fecha de fin no puede ser anterior a la fecha de inicio")
	}
	if _, err := s.employeeRepo.FindActiveByID(ctx, contract.EmployeeID); err != nil {
		return errors.New("empleado no encontrado")
	}
	if actor != nil {
		contract.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, contract); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, contract, actor)
	})
}

func (s *ContractService) Update(ctx context.Context, id uint, input UpdateContractInput, actor *audit.Actor) (*models.Contract, error) {
	contract, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(contract)

	if input.Type != nil {
		if !models.IsValidContractType(*input.Type) {
			return nil, errors.New("tipo de contrato no válido")
		}
		contract.Type = *input.Type
	}
	if input.StartDate != nil {
		contract.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		contract.EndDate = input.EndDate
	}
	if input.Observations != nil {
		contract.Observations = input.Observations
	}
	if contract.EndDate != nil && contract.EndDate.Before(contract.StartDate) {
		return nil, errors.New("la fecha de fin no puede ser anterior a la fecha de inicio")
	}
	if actor != nil {
		contract.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, contract); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, contract, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// Delete removes a contract permanently; contratos carries no activo flag.
func (s *ContractService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	contract, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, contract); err != nil {
			return err
		}
		return s.recorder.AfterDelete(ctx, tx, contract, actor)
	})
}

// FindExpiringBefore lists contracts whose end date falls before deadline.
// Used by the scheduled expiry check.
func (s *ContractService) FindExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Contract, error) {
	return s.repo.FindExpiringBefore(ctx, deadline)
}
