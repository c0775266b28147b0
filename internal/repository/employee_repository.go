package repository

import (
	"context"
	"errors"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Employee, error)
	FindActiveByID(ctx context.Context, id uint) (*models.Employee, error)
	List(ctx context.Context, query *ListQuery) ([]models.Employee, int64, error)
	CountActive(ctx context.Context) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, employee *models.Employee) error
	Save(ctx context.Context, tx *gorm.DB, employee *models.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("Position.Career").
		Preload("Creator").
		Preload("Updater").
		First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindActiveByID(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !employee.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return employee, nil
}

func (r *employeeRepository) List(ctx context.Context, query *ListQuery) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Employee{}).Where("activo = ?", true)

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("nombre_completo ILIKE ? OR dpi ILIKE ? OR correo_personal ILIKE ?", search, search, search)
	}
	if query.Filters["id_puesto"] != "" {
		db = db.Where("id_puesto = ?", query.Filters["id_puesto"])
	}
	if query.Filters["estado_empleo"] != "" {
		db = db.Where("estado_empleo = ?", query.Filters["estado_empleo"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Position").
		Preload("Position.Career").
		Preload("Creator").
		Preload("Updater").
		Order("nombre_completo ASC").
		Find(&employees).Error
	return employees, total, err
}

func (r *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("activo = ? AND estado_empleo = ?", true, models.EmploymentActive).
		Count(&total).Error
	return total, err
}

func (r *employeeRepository) Create(ctx context.Context, tx *gorm.DB, employee *models.Employee) error {
	if err := tx.WithContext(ctx).Create(employee).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.New("ya existe un empleado con ese DPI")
		}
		return err
	}
	return nil
}

func (r *employeeRepository) Save(ctx context.Context, tx *gorm.DB, employee *models.Employee) error {
	return tx.WithContext(ctx).Save(employee).Error
}
