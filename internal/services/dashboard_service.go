package services

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
)

// DashboardService aggregates the counters shown on the landing screen
type DashboardService struct {
	employeeRepo repository.EmployeeRepository
	vacancyRepo  repository.VacancyRepository
	vacationRepo repository.VacationRepository
	productRepo  repository.ProductRepository
}

func NewDashboardService(
	employeeRepo repository.EmployeeRepository,
	vacancyRepo repository.VacancyRepository,
	vacationRepo repository.VacationRepository,
	productRepo repository.ProductRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo: employeeRepo,
		vacancyRepo:  vacancyRepo,
		vacationRepo: vacationRepo,
		productRepo:  productRepo,
	}
}

// DashboardSummary holds the headline counters
type DashboardSummary struct {
	ActiveEmployees  int64 `json:"empleados_activos"`
	OpenVacancies    int64 `json:"vacantes_abiertas"`
	PendingVacations int64 `json:"vacaciones_pendientes"`
	LowStockProducts int64 `json:"productos_stock_bajo"`
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	employees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	vacancies, err := s.vacancyRepo.CountByStatus(ctx, models.VacancyOpen)
	if err != nil {
		return nil, err
	}
	vacations, err := s.vacationRepo.CountByStatus(ctx, models.VacationPending)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		ActiveEmployees:  employees,
		OpenVacancies:    vacancies,
		PendingVacations: vacations,
		LowStockProducts: lowStock,
	}, nil
}
