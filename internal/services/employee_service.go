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

// EmployeeService handles employee records
type EmployeeService struct {
	repo     repository.EmployeeRepository
	db       *gorm.DB
	recorder *audit.Recorder
}

func NewEmployeeService(repo repository.EmployeeRepository, db *gorm.DB, recorder *audit.Recorder) *EmployeeService {
	return &EmployeeService{repo: repo, db: db, recorder: recorder}
}

// UpdateEmployeeInput carries the optional fields of an employee update
type UpdateEmployeeInput struct {
	FullName      *string
	DPI           *string
	Phone         *string
	PersonalEmail *string
	Address       *string
	BirthDate     *time.Time
	Gender        *string
	MaritalStatus *string
	HireDate      *time.Time
	PositionID    *uint
	Employment    *string
}

func (s *EmployeeService) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context, query *repository.ListQuery) ([]models.Employee, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *EmployeeService) Create(ctx context.Context, employee *models.Employee, actor *audit.Actor) error {
	if employee.Employment == "" {
		employee.Employment = models.EmploymentActive
	}
	employee.Active = true
	if actor != nil {
		employee.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, employee); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, employee, actor)
	})
}

func (s *EmployeeService) Update(ctx context.Context, id uint, input UpdateEmployeeInput, actor *audit.Actor) (*models.Employee, error) {
	employee, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(employee)

	if input.FullName != nil {
		employee.FullName = *input.FullName
	}
	if input.DPI != nil {
		employee.DPI = input.DPI
	}
	if input.Phone != nil {
		employee.Phone = input.Phone
	}
	if input.PersonalEmail != nil {
		employee.PersonalEmail = input.PersonalEmail
	}
	if input.Address != nil {
		employee.Address = input.Address
	}
	if input.BirthDate != nil {
		employee.BirthDate = input.BirthDate
	}
	if input.Gender != nil {
		employee.Gender = input.Gender
	}
	if input.MaritalStatus != nil {
		employee.MaritalStatus = input.MaritalStatus
	}
	if input.HireDate != nil {
		employee.HireDate = input.HireDate
	}
	if input.PositionID != nil {
		employee.PositionID = input.PositionID
	}
	if input.Employment != nil {
		employee.Employment = *input.Employment
	}
	if actor != nil {
		employee.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, employee); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, employee, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete deactivates the employee. The row stays for history; the audit
// entry records the deactivation as a deletion.
func (s *EmployeeService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	employee, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(employee)

	employee.Active = false
	if actor != nil {
		employee.UpdatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, employee); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, employee, previous, actor)
	})
}
