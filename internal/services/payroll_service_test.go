package services

import (
	"context"
	"testing"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Mock PayrollRepository
type mockPayrollRepository struct {
	repository.PayrollRepository
	mockFindActiveByID func(ctx context.Context, id uint) (*models.Payroll, error)
	mockExists         func(ctx context.Context, employeeID uint, month, year int) (bool, error)
}

func (m *mockPayrollRepository) FindActiveByID(ctx context.Context, id uint) (*models.Payroll, error) {
	if m.mockFindActiveByID != nil {
		return m.mockFindActiveByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPayrollRepository) ExistsForEmployeePeriod(ctx context.Context, employeeID uint, month, year int) (bool, error) {
	if m.mockExists != nil {
		return m.mockExists(ctx, employeeID, month, year)
	}
	return false, nil
}

// Mock EmployeeRepository
type mockEmployeeRepository struct {
	repository.EmployeeRepository
	mockFindActiveByID func(ctx context.Context, id uint) (*models.Employee, error)
}

func (m *mockEmployeeRepository) FindActiveByID(ctx context.Context, id uint) (*models.Employee, error) {
	if m.mockFindActiveByID != nil {
		return m.mockFindActiveByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func activeEmployee(id uint) *models.Employee {
	return &models.Employee{
		ID:         id,
		FullName:   "Ana López",
		Active:     true,
		Employment: models.EmploymentActive,
		Position:   &models.Position{ID: 1, Name: "Contador", BaseSalary: 4500},
	}
}

func TestPayrollCreateInvalidPeriod(t *testing.T) {
	svc := NewPayrollService(&mockPayrollRepository{}, &mockEmployeeRepository{}, nil, audit.NewRecorder(nil))

	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"Month Zero", 0, 2026},
		{"Month Thirteen", 13, 2026},
		{"Year Too Old", 6, 1999},
		{"Year Too Far", 6, 2101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreatePayrollInput{
				EmployeeID: 1,
				Month:      tt.month,
				Year:       tt.year,
			}, &audit.Actor{ID: 1})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPayrollCreateUnknownEmployee(t *testing.T) {
	svc := NewPayrollService(&mockPayrollRepository{}, &mockEmployeeRepository{}, nil, audit.NewRecorder(nil))

	_, err := svc.Create(context.Background(), CreatePayrollInput{
		EmployeeID: 99,
		Month:      6,
		Year:       2026,
	}, &audit.Actor{ID: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empleado no encontrado")
}

func TestPayrollCreateDuplicatePeriod(t *testing.T) {
	employeeRepo := &mockEmployeeRepository{
		mockFindActiveByID: func(ctx context.Context, id uint) (*models.Employee, error) {
			return activeEmployee(id), nil
		},
	}
	payrollRepo := &mockPayrollRepository{
		mockExists: func(ctx context.Context, employeeID uint, month, year int) (bool, error) {
			assert.Equal(t, uint(1), employeeID)
			assert.Equal(t, 6, month)
			assert.Equal(t, 2026, year)
			return true, nil
		},
	}
	svc := NewPayrollService(payrollRepo, employeeRepo, nil, audit.NewRecorder(nil))

	_, err := svc.Create(context.Background(), CreatePayrollInput{
		EmployeeID: 1,
		Month:      6,
		Year:       2026,
	}, &audit.Actor{ID: 1})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "06/2026")
}

func TestPayrollCreateNegativeInputs(t *testing.T) {
	employeeRepo := &mockEmployeeRepository{
		mockFindActiveByID: func(ctx context.Context, id uint) (*models.Employee, error) {
			return activeEmployee(id), nil
		},
	}
	svc := NewPayrollService(&mockPayrollRepository{}, employeeRepo, nil, audit.NewRecorder(nil))

	_, err := svc.Create(context.Background(), CreatePayrollInput{
		EmployeeID:    1,
		Month:         6,
		Year:          2026,
		OvertimeHours: -3,
	}, &audit.Actor{ID: 1})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "negativos")
}

func TestPayrollFindByIDNotFound(t *testing.T) {
	svc := NewPayrollService(&mockPayrollRepository{}, &mockEmployeeRepository{}, nil, audit.NewRecorder(nil))

	_, err := svc.FindByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidatePeriodAccepts(t *testing.T) {
	assert.NoError(t, validatePeriod(1, 2000))
	assert.NoError(t, validatePeriod(12, 2100))
	assert.NoError(t, validatePeriod(6, 2026))
}
