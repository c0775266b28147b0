package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	User        *UserHandler
	Employee    *EmployeeHandler
	Position    *PositionHandler
	Contract    *ContractHandler
	Payroll     *PayrollHandler
	Vacation    *VacationHandler
	Recruitment *RecruitmentHandler
	Evaluation  *EvaluationHandler
	Inventory   *InventoryHandler
	Wellness    *WellnessHandler
	Audit       *AuditHandler
	Dashboard   *DashboardHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Auth:        NewAuthHandler(svcs.Auth),
		User:        NewUserHandler(svcs.User),
		Employee:    NewEmployeeHandler(svcs.Employee),
		Position:    NewPositionHandler(svcs.Position),
		Contract:    NewContractHandler(svcs.Contract),
		Payroll:     NewPayrollHandler(svcs.Payroll, svcs.Report, svcs.Export),
		Vacation:    NewVacationHandler(svcs.Vacation),
		Recruitment: NewRecruitmentHandler(svcs.Recruitment),
		Evaluation:  NewEvaluationHandler(svcs.Evaluation),
		Inventory:   NewInventoryHandler(svcs.Inventory),
		Wellness:    NewWellnessHandler(svcs.Wellness),
		Audit:       NewAuditHandler(svcs.Audit, svcs.Export),
		Dashboard:   NewDashboardHandler(svcs.Dashboard),
	}
}

// parseListQuery reads the shared pagination and search params
func parseListQuery(c *gin.Context) *repository.ListQuery {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 || query.PerPage > 100 {
		query.PerPage = 20
	}
	query.Search = c.Query("search_term")
	return query
}

// paginationMeta builds the pagination block of a list response
func paginationMeta(query *repository.ListQuery, total int64) gin.H {
	return gin.H{
		"page":        query.Page,
		"per_page":    query.PerPage,
		"total":       total,
		"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
	}
}

// parseID reads a numeric path param
func parseID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id)
}

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, audit.ErrActorMissing):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
