package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// PayrollRepository defines the interface for payroll record data access
type PayrollRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Payroll, error)
	FindActiveByID(ctx context.Context, id uint) (*models.Payroll, error)
	List(ctx context.Context, query *ListQuery) ([]models.Payroll, int64, error)
	FindByPeriod(ctx context.Context, month, year int) ([]models.Payroll, error)
	ExistsForEmployeePeriod(ctx context.Context, employeeID uint, month, year int) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, payroll *models.Payroll) error
	Save(ctx context.Context, tx *gorm.DB, payroll *models.Payroll) error
}

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) FindByID(ctx context.Context, id uint) (*models.Payroll, error) {
	var payroll models.Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.Position").
		Preload("Creator").
		Preload("Updater").
		First(&payroll, id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *payrollRepository) FindActiveByID(ctx context.Context, id uint) (*models.Payroll, error) {
	payroll, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !payroll.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return payroll, nil
}

func (r *payrollRepository) List(ctx context.Context, query *ListQuery) ([]models.Payroll, int64, error) {
	var payrolls []models.Payroll
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Payroll{}).Where("activo = ?", true)

	if query.Filters["id_empleado"] != "" {
		db = db.Where("id_empleado = ?", query.Filters["id_empleado"])
	}
	if query.Filters["mes"] != "" {
		db = db.Where("mes = ?", query.Filters["mes"])
	}
	if query.Filters["anio"] != "" {
		db = db.Where("anio = ?", query.Filters["anio"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Employee").
		Preload("Creator").
		Preload("Updater").
		Order("anio DESC, mes DESC").
		Find(&payrolls).Error
	return payrolls, total, err
}

// FindByPeriod returns every active payroll record of a month/year, used by
// the batch receipt generator and period exports.
func (r *payrollRepository) FindByPeriod(ctx context.Context, month, year int) ([]models.Payroll, error) {
	var payrolls []models.Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.Position").
		Where("activo = ? AND mes = ? AND anio = ?", true, month, year).
		Order("id_empleado ASC").
		Find(&payrolls).Error
	return payrolls, err
}

// ExistsForEmployeePeriod reports whether the employee already has an active
// payroll record in the given month/year.
func (r *payrollRepository) ExistsForEmployeePeriod(ctx context.Context, employeeID uint, month, year int) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Payroll{}).
		Where("activo = ? AND id_empleado = ? AND mes = ? AND anio = ?", true, employeeID, month, year).
		Count(&total).Error
	return total > 0, err
}

func (r *payrollRepository) Create(ctx context.Context, tx *gorm.DB, payroll *models.Payroll) error {
	return tx.WithContext(ctx).Create(payroll).Error
}

func (r *payrollRepository) Save(ctx context.Context, tx *gorm.DB, payroll *models.Payroll) error {
	return tx.WithContext(ctx).Save(payroll).Error
}
