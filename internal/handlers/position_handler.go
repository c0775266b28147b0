package handlers

import (
	"net/http"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// PositionHandler serves puestos and carreras
type PositionHandler struct {
	positionService *services.PositionService
}

func NewPositionHandler(positionService *services.PositionService) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// @Summary List Positions
// @Tags Positions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /puestos [get]
func (h *PositionHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	positions, total, err := h.positionService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"puestos": positions, "pagination": paginationMeta(query, total)})
}

// @Summary Get Position
// @Tags Positions
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} models.Position
// @Security BearerAuth
// @Router /puestos/{id} [get]
func (h *PositionHandler) Show(c *gin.Context) {
	position, err := h.positionService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"puesto": position})
}

type CreatePositionRequest struct {
	Name       string  `json:"nombre_puesto" binding:"required"`
	BaseSalary float64 `json:"salario_base"`
	CareerID   *uint   `json:"id_carrera"`
}

// @Summary Create Position
// @Tags Positions
// @Accept json
// @Produce json
// @Param request body CreatePositionRequest true "Position data"
// @Success 201 {object} models.Position
// @Security BearerAuth
// @Router /puestos [post]
func (h *PositionHandler) Create(c *gin.Context) {
	var req CreatePositionRequest
	if err := BindNestedOrFlat(c, "puesto", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del puesto es requerido"})
		return
	}

	position := &models.Position{
		Name:       req.Name,
		BaseSalary: req.BaseSalary,
		CareerID:   req.CareerID,
	}
	if err := h.positionService.Create(c.Request.Context(), position, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"puesto": position})
}

type UpdatePositionRequest struct {
	Name       *string  `json:"nombre_puesto"`
	BaseSalary *float64 `json:"salario_base"`
	CareerID   *uint    `json:"id_carrera"`
}

// @Summary Update Position
// @Tags Positions
// @Accept json
// @Produce json
// @Param id path int true "Position ID"
// @Param request body UpdatePositionRequest true "Fields to update"
// @Success 200 {object} models.Position
// @Security BearerAuth
// @Router /puestos/{id} [put]
func (h *PositionHandler) Update(c *gin.Context) {
	var req UpdatePositionRequest
	if err := BindNestedOrFlat(c, "puesto", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.positionService.Update(c.Request.Context(), parseID(c, "id"), services.UpdatePositionInput{
		Name:       req.Name,
		BaseSalary: req.BaseSalary,
		CareerID:   req.CareerID,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"puesto": position})
}

// @Summary Delete Position
// @Tags Positions
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /puestos/{id} [delete]
func (h *PositionHandler) Destroy(c *gin.Context) {
	if err := h.positionService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Puesto eliminado"})
}

// @Summary List Careers
// @Tags Careers
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /carreras [get]
func (h *PositionHandler) IndexCareers(c *gin.Context) {
	query := parseListQuery(c)
	careers, total, err := h.positionService.ListCareers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carreras": careers, "pagination": paginationMeta(query, total)})
}

// @Summary Get Career
// @Tags Careers
// @Produce json
// @Param id path int true "Career ID"
// @Success 200 {object} models.Career
// @Security BearerAuth
// @Router /carreras/{id} [get]
func (h *PositionHandler) ShowCareer(c *gin.Context) {
	career, err := h.positionService.FindCareerByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carrera": career})
}

type CareerRequest struct {
	Name string `json:"nombre_carrera" binding:"required"`
}

// @Summary Create Career
// @Tags Careers
// @Accept json
// @Produce json
// @Param request body CareerRequest true "Career data"
// @Success 201 {object} models.Career
// @Security BearerAuth
// @Router /carreras [post]
func (h *PositionHandler) CreateCareer(c *gin.Context) {
	var req CareerRequest
	if err := BindNestedOrFlat(c, "carrera", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre de la carrera es requerido"})
		return
	}

	career := &models.Career{Name: req.Name, Active: true}
	if err := h.positionService.CreateCareer(c.Request.Context(), career, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"carrera": career})
}

// @Summary Update Career
// @Tags Careers
// @Accept json
// @Produce json
// @Param id path int true "Career ID"
// @Param request body CareerRequest true "Career data"
// @Success 200 {object} models.Career
// @Security BearerAuth
// @Router /carreras/{id} [put]
func (h *PositionHandler) UpdateCareer(c *gin.Context) {
	var req CareerRequest
	if err := BindNestedOrFlat(c, "carrera", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre de la carrera es requerido"})
		return
	}

	career, err := h.positionService.UpdateCareer(c.Request.Context(), parseID(c, "id"), req.Name, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carrera": career})
}

// @Summary Delete Career
// @Description Deactivates the career; the record stays for history
// @Tags Careers
// @Produce json
// @Param id path int true "Career ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /carreras/{id} [delete]
func (h *PositionHandler) DestroyCareer(c *gin.Context) {
	if err := h.positionService.DeleteCareer(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Carrera eliminada"})
}
