package services

import (
	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/jobs"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/storage"
	"gorm.io/gorm"
)

// Services holds all service instances
type Services struct {
	Auth        *AuthService
	User        *UserService
	Employee    *EmployeeService
	Position    *PositionService
	Contract    *ContractService
	Payroll     *PayrollService
	Vacation    *VacationService
	Recruitment *RecruitmentService
	Evaluation  *EvaluationService
	Inventory   *InventoryService
	Wellness    *WellnessService
	Audit       *AuditService
	Dashboard   *DashboardService
	Export      *ExportService
	Report      *ReportService
	Email       *EmailService
}

// NewServices creates all service instances. One audit recorder is shared
// by every service so each mutation leaves its entry through the same hooks.
func NewServices(repos *repository.Repositories, worker *jobs.Worker, store *storage.LocalStorage, cfg *config.Config, db *gorm.DB) *Services {
	recorder := audit.NewRecorder(repos.Audit)

	emailSvc := NewEmailService(cfg)
	auditSvc := NewAuditService(repos.Audit)
	payrollSvc := NewPayrollService(repos.Payroll, repos.Employee, db, recorder)

	return &Services{
		Auth:        NewAuthService(repos.User, repos.Audit, db, cfg),
		User:        NewUserService(repos.User, db, recorder, emailSvc, worker),
		Employee:    NewEmployeeService(repos.Employee, db, recorder),
		Position:    NewPositionService(repos.Position, repos.Career, db, recorder),
		Contract:    NewContractService(repos.Contract, repos.Employee, db, recorder),
		Payroll:     payrollSvc,
		Vacation:    NewVacationService(repos.Vacation, repos.Employee, db, recorder),
		Recruitment: NewRecruitmentService(repos.Vacancy, repos.Candidate, repos.Application, repos.Employee, db, recorder),
		Evaluation:  NewEvaluationService(repos.Evaluation, repos.Criterion, repos.Employee, db, recorder),
		Inventory:   NewInventoryService(repos.Category, repos.Product, repos.Movement, db, recorder),
		Wellness:    NewWellnessService(repos.Wellness, db, recorder),
		Audit:       auditSvc,
		Dashboard:   NewDashboardService(repos.Employee, repos.Vacancy, repos.Vacation, repos.Product),
		Export:      NewExportService(auditSvc, payrollSvc),
		Report:      NewReportService(payrollSvc, store),
		Email:       emailSvc,
	}
}
