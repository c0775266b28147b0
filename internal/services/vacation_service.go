package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/statemachine"
	"gorm.io/gorm"
)

// VacationService handles vacation requests and their state transitions
type VacationService struct {
	repo         repository.VacationRepository
	employeeRepo repository.EmployeeRepository
	db           *gorm.DB
	recorder     *audit.Recorder
}

func NewVacationService(repo repository.VacationRepository, employeeRepo repository.EmployeeRepository, db *gorm.DB, recorder *audit.Recorder) *VacationService {
	return &VacationService{
		repo:         repo,
		employeeRepo: employeeRepo,
		db:           db,
		recorder:     recorder,
	}
}

func (s *VacationService) FindByID(ctx context.Context, id uint) (*models.Vacation, error) {
	vacation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vacation, nil
}

func (s *VacationService) List(ctx context.Context, query *repository.ListQuery) ([]models.Vacation, int64, error) {
	return s.repo.List(ctx, query)
}

// Create registers a request in Pendiente state.
func (s *VacationService) Create(ctx context.Context, vacation *models.Vacation, actor *audit.Actor) error {
	if vacation.EndDate.Before(vacation.StartDate) {
		return fmt.Errorf("%w: la fecha de fin no puede ser anterior a la fecha de inicio", ErrValidation)
	}
	if _, err := s.employeeRepo.FindActiveByID(ctx, vacation.EmployeeID); err != nil {
		return errors.New("empleado no encontrado")
	}

	vacation.Status = models.VacationPending
	if actor != nil {
		vacation.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, vacation); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, vacation, actor)
	})
}

// Approve moves a pending request to Aprobada.
func (s *VacationService) Approve(ctx context.Context, id uint, actor *audit.Actor) (*models.Vacation, error) {
	return s.transition(ctx, id, actor, func(fsm *statemachine.VacationFSM) error {
		return fsm.Approve(ctx)
	})
}

// Reject moves a pending request to Rechazada.
func (s *VacationService) Reject(ctx context.Context, id uint, actor *audit.Actor) (*models.Vacation, error) {
	return s.transition(ctx, id, actor, func(fsm *statemachine.VacationFSM) error {
		return fsm.Reject(ctx)
	})
}

// Cancel moves a pending or approved request to Cancelada.
func (s *VacationService) Cancel(ctx context.Context, id uint, actor *audit.Actor) (*models.Vacation, error) {
	return s.transition(ctx, id, actor, func(fsm *statemachine.VacationFSM) error {
		return fsm.Cancel(ctx)
	})
}

func (s *VacationService) transition(ctx context.Context, id uint, actor *audit.Actor, event func(*statemachine.VacationFSM) error) (*models.Vacation, error) {
	vacation, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(vacation)

	fsm := statemachine.NewVacationFSM(vacation)
	if err := event(fsm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if actor != nil {
		vacation.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, vacation); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, vacation, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return vacation, nil
}

// Delete removes a request permanently; vacaciones carries no activo flag.
func (s *VacationService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	vacation, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, vacation); err != nil {
			return err
		}
		return s.recorder.AfterDelete(ctx, tx, vacation, actor)
	})
}
