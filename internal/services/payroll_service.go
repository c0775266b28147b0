package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/payroll"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// PayrollService generates and maintains payroll records. Every stored
// computed column comes from payroll.Calculate; edits to any input column
// re-derive all of them.
type PayrollService struct {
	repo         repository.PayrollRepository
	employeeRepo repository.EmployeeRepository
	db           *gorm.DB
	recorder     *audit.Recorder
}

func NewPayrollService(repo repository.PayrollRepository, employeeRepo repository.EmployeeRepository, db *gorm.DB, recorder *audit.Recorder) *PayrollService {
	return &PayrollService{
		repo:         repo,
		employeeRepo: employeeRepo,
		db:           db,
		recorder:     recorder,
	}
}

// CreatePayrollInput carries the figures accepted on payroll generation.
// BaseSalary nil means "use the base salary of the employee's position".
type CreatePayrollInput struct {
	EmployeeID      uint
	Month           int
	Year            int
	BaseSalary      *float64
	OvertimeHours   float64
	Commissions     float64
	IncomeTax       float64
	OtherDeductions float64
}

// UpdatePayrollInput carries the optional input-column edits of a payroll
// update. Computed columns are never accepted from callers.
type UpdatePayrollInput struct {
	BaseSalary      *float64
	OvertimeHours   *float64
	Commissions     *float64
	IncomeTax       *float64
	OtherDeductions *float64
}

func (s *PayrollService) FindByID(ctx context.Context, id uint) (*models.Payroll, error) {
	record, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *PayrollService) List(ctx context.Context, query *repository.ListQuery) ([]models.Payroll, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *PayrollService) FindByPeriod(ctx context.Context, month, year int) ([]models.Payroll, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	return s.repo.FindByPeriod(ctx, month, year)
}

func (s *PayrollService) Create(ctx context.Context, input CreatePayrollInput, actor *audit.Actor) (*models.Payroll, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindActiveByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, errors.New("empleado no encontrado")
	}

	exists, err := s.repo.ExistsForEmployeePeriod(ctx, input.EmployeeID, input.Month, input.Year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: el empleado ya tiene nómina para %02d/%d", ErrDuplicate, input.Month, input.Year)
	}

	baseSalary := 0.0
	if input.BaseSalary != nil {
		baseSalary = *input.BaseSalary
	} else if employee.Position != nil {
		baseSalary = employee.Position.BaseSalary
	}

	inputs := payroll.Inputs{
		BaseSalary:      baseSalary,
		OvertimeHours:   input.OvertimeHours,
		Commissions:     input.Commissions,
		IncomeTax:       input.IncomeTax,
		OtherDeductions: input.OtherDeductions,
	}
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	record := &models.Payroll{
		EmployeeID: input.EmployeeID,
		Month:      input.Month,
		Year:       input.Year,
		Active:     true,
	}
	applyResult(record, payroll.Calculate(inputs))
	if actor != nil {
		record.CreatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, record); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, record, actor)
	})
	if err != nil {
		return nil, err
	}
	record.Employee = employee
	return record, nil
}

// Update merges the edited input columns over the stored ones and
// recomputes every derived column from the merged set.
func (s *PayrollService) Update(ctx context.Context, id uint, input UpdatePayrollInput, actor *audit.Actor) (*models.Payroll, error) {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(record)

	inputs := payroll.Inputs{
		BaseSalary:      record.BaseSalary,
		OvertimeHours:   record.OvertimeHours,
		Commissions:     record.Commissions,
		IncomeTax:       record.IncomeTax,
		OtherDeductions: record.OtherDeductions,
	}
	if input.BaseSalary != nil {
		inputs.BaseSalary = *input.BaseSalary
	}
	if input.OvertimeHours != nil {
		inputs.OvertimeHours = *input.OvertimeHours
	}
	if input.Commissions != nil {
		inputs.Commissions = *input.Commissions
	}
	if input.IncomeTax != nil {
		inputs.IncomeTax = *input.IncomeTax
	}
	if input.OtherDeductions != nil {
		inputs.OtherDeductions = *input.OtherDeductions
	}
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	applyResult(record, payroll.Calculate(inputs))
	if actor != nil {
		record.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, record); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, record, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Delete deactivates the payroll record; history stays queryable by id.
func (s *PayrollService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(record)

	record.Active = false
	if actor != nil {
		record.UpdatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, record); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, record, previous, actor)
	})
}

func applyResult(record *models.Payroll, result payroll.Result) {
	record.BaseSalary = result.BaseSalary
	record.OvertimeHours = result.OvertimeHours
	record.Commissions = result.Commissions
	record.IncomeTax = result.IncomeTax
	record.OtherDeductions = result.OtherDeductions
	record.StatutoryBonus = result.StatutoryBonus
	record.OvertimePay = result.OvertimePay
	record.GrossIncome = result.GrossIncome
	record.SocialSecurity = result.SocialSecurity
	record.TotalDeductions = result.TotalDeductions
	record.NetPay = result.NetPay
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: mes fuera de rango", ErrValidation)
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("%w: año fuera de rango", ErrValidation)
	}
	return nil
}

func validateInputs(in payroll.Inputs) error {
	if in.BaseSalary < 0 || in.OvertimeHours < 0 || in.Commissions < 0 || in.IncomeTax < 0 || in.OtherDeductions < 0 {
		return fmt.Errorf("%w: los montos de nómina no pueden ser negativos", ErrValidation)
	}
	return nil
}
