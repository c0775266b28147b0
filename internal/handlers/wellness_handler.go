package handlers

import (
	"net/http"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

type WellnessHandler struct {
	wellnessService *services.WellnessService
}

func NewWellnessHandler(wellnessService *services.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellnessService: wellnessService}
}

// @Summary List Wellness Activities
// @Tags Wellness
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /bienestar [get]
func (h *WellnessHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	activities, total, err := h.wellnessService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actividades": activities, "pagination": paginationMeta(query, total)})
}

// @Summary Get Wellness Activity
// @Tags Wellness
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} models.WellnessActivity
// @Security BearerAuth
// @Router /bienestar/{id} [get]
func (h *WellnessHandler) Show(c *gin.Context) {
	activity, err := h.wellnessService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actividad": activity})
}

type CreateWellnessRequest struct {
	Name        string  `json:"nombre_actividad" binding:"required"`
	Description *string `json:"descripcion"`
	Date        string  `json:"fecha_actividad" binding:"required"`
}

// @Summary Create Wellness Activity
// @Tags Wellness
// @Accept json
// @Produce json
// @Param request body CreateWellnessRequest true "Activity data"
// @Success 201 {object} models.WellnessActivity
// @Security BearerAuth
// @Router /bienestar [post]
func (h *WellnessHandler) Create(c *gin.Context) {
	var req CreateWellnessRequest
	if err := BindNestedOrFlat(c, "actividad", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nombre_actividad y fecha_actividad son requeridos"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_actividad no válida, se espera AAAA-MM-DD"})
		return
	}

	activity := &models.WellnessActivity{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
	}
	if err := h.wellnessService.Create(c.Request.Context(), activity, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"actividad": activity})
}

type UpdateWellnessRequest struct {
	Name        *string `json:"nombre_actividad"`
	Description *string `json:"descripcion"`
	Date        *string `json:"fecha_actividad"`
}

// @Summary Update Wellness Activity
// @Tags Wellness
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param request body UpdateWellnessRequest true "Fields to update"
// @Success 200 {object} models.WellnessActivity
// @Security BearerAuth
// @Router /bienestar/{id} [put]
func (h *WellnessHandler) Update(c *gin.Context) {
	var req UpdateWellnessRequest
	if err := BindNestedOrFlat(c, "actividad", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_actividad no válida, se espera AAAA-MM-DD"})
		return
	}

	activity, err := h.wellnessService.Update(c.Request.Context(), parseID(c, "id"), services.UpdateWellnessInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actividad": activity})
}

// @Summary Delete Wellness Activity
// @Description Deactivates the activity; the record stays for history
// @Tags Wellness
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /bienestar/{id} [delete]
func (h *WellnessHandler) Destroy(c *gin.Context) {
	if err := h.wellnessService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actividad eliminada"})
}
