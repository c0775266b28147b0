package handlers

import (
	"net/http"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

type VacationHandler struct {
	vacationService *services.VacationService
}

func NewVacationHandler(vacationService *services.VacationService) *VacationHandler {
	return &VacationHandler{vacationService: vacationService}
}

// @Summary List Vacation Requests
// @Tags Vacations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param id_empleado query int false "Filter by employee"
// @Param estado query string false "Filter by state"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /vacaciones [get]
func (h *VacationHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_empleado"] = c.Query("id_empleado")
	query.Filters["estado"] = c.Query("estado")

	vacations, total, err := h.vacationService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacaciones": vacations, "pagination": paginationMeta(query, total)})
}

// @Summary Get Vacation Request
// @Tags Vacations
// @Produce json
// @Param id path int true "Vacation ID"
// @Success 200 {object} models.Vacation
// @Security BearerAuth
// @Router /vacaciones/{id} [get]
func (h *VacationHandler) Show(c *gin.Context) {
	vacation, err := h.vacationService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacacion": vacation})
}

type CreateVacationRequest struct {
	EmployeeID uint   `json:"id_empleado" binding:"required"`
	StartDate  string `json:"fecha_inicio" binding:"required"`
	EndDate    string `json:"fecha_fin" binding:"required"`
}

// @Summary Create Vacation Request
// @Description Registers a request; it always starts Pendiente
// @Tags Vacations
// @Accept json
// @Produce json
// @Param request body CreateVacationRequest true "Vacation data"
// @Success 201 {object} models.Vacation
// @Security BearerAuth
// @Router /vacaciones [post]
func (h *VacationHandler) Create(c *gin.Context) {
	var req CreateVacationRequest
	if err := BindNestedOrFlat(c, "vacacion", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EmployeeID == 0 || req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado, fecha_inicio y fecha_fin son requeridos"})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_inicio no válida, se espera AAAA-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_fin no válida, se espera AAAA-MM-DD"})
		return
	}

	vacation := &models.Vacation{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := h.vacationService.Create(c.Request.Context(), vacation, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vacacion": vacation})
}

// @Summary Approve Vacation Request
// @Tags Vacations
// @Produce json
// @Param id path int true "Vacation ID"
// @Success 200 {object} models.Vacation
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /vacaciones/{id}/aprobar [post]
func (h *VacationHandler) Approve(c *gin.Context) {
	vacation, err := h.vacationService.Approve(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacacion": vacation})
}

// @Summary Reject Vacation Request
// @Tags Vacations
// @Produce json
// @Param id path int true "Vacation ID"
// @Success 200 {object} models.Vacation
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /vacaciones/{id}/rechazar [post]
func (h *VacationHandler) Reject(c *gin.Context) {
	vacation, err := h.vacationService.Reject(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacacion": vacation})
}

// @Summary Cancel Vacation Request
// @Tags Vacations
// @Produce json
// @Param id path int true "Vacation ID"
// @Success 200 {object} models.Vacation
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /vacaciones/{id}/cancelar [post]
func (h *VacationHandler) Cancel(c *gin.Context) {
	vacation, err := h.vacationService.Cancel(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacacion": vacation})
}

// @Summary Delete Vacation Request
// @Tags Vacations
// @Produce json
// @Param id path int true "Vacation ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /vacaciones/{id} [delete]
func (h *VacationHandler) Destroy(c *gin.Context) {
	if err := h.vacationService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Solicitud de vacaciones eliminada"})
}
