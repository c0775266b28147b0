package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User        UserRepository
	Employee    EmployeeRepository
	Position    PositionRepository
	Career      CareerRepository
	Contract    ContractRepository
	Payroll     PayrollRepository
	Vacation    VacationRepository
	Vacancy     VacancyRepository
	Candidate   CandidateRepository
	Application ApplicationRepository
	Evaluation  EvaluationRepository
	Criterion   CriterionRepository
	Category    InventoryCategoryRepository
	Product     ProductRepository
	Movement    InventoryMovementRepository
	Wellness    WellnessRepository
	Audit       AuditRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Employee:    NewEmployeeRepository(db),
		Position:    NewPositionRepository(db),
		Career:      NewCareerRepository(db),
		Contract:    NewContractRepository(db),
		Payroll:     NewPayrollRepository(db),
		Vacation:    NewVacationRepository(db),
		Vacancy:     NewVacancyRepository(db),
		Candidate:   NewCandidateRepository(db),
		Application: NewApplicationRepository(db),
		Evaluation:  NewEvaluationRepository(db),
		Criterion:   NewCriterionRepository(db),
		Category:    NewInventoryCategoryRepository(db),
		Product:     NewProductRepository(db),
		Movement:    NewInventoryMovementRepository(db),
		Wellness:    NewWellnessRepository(db),
		Audit:       NewAuditRepository(db),
	}
}

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

func (q *ListQuery) paginate(db *gorm.DB) *gorm.DB {
	if q.PerPage > 0 {
		db = db.Offset((q.Page - 1) * q.PerPage).Limit(q.PerPage)
	}
	return db
}
