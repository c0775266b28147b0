package handlers

import (
	"net/http"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// EvaluationHandler serves evaluaciones and criterios
type EvaluationHandler struct {
	evaluationService *services.EvaluationService
}

func NewEvaluationHandler(evaluationService *services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// @Summary List Evaluations
// @Tags Evaluations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param id_empleado query int false "Filter by employee"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /evaluaciones [get]
func (h *EvaluationHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_empleado"] = c.Query("id_empleado")

	evaluations, total, err := h.evaluationService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluaciones": evaluations, "pagination": paginationMeta(query, total)})
}

// @Summary Get Evaluation
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation ID"
// @Success 200 {object} models.Evaluation
// @Security BearerAuth
// @Router /evaluaciones/{id} [get]
func (h *EvaluationHandler) Show(c *gin.Context) {
	evaluation, err := h.evaluationService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluacion": evaluation})
}

type CreateEvaluationRequest struct {
	EmployeeID uint                  `json:"id_empleado" binding:"required"`
	Date       *string               `json:"fecha_evaluacion"`
	Evaluator  *string               `json:"evaluador"`
	Comments   *string               `json:"comentarios"`
	Scores     []services.ScoreInput `json:"puntuaciones" binding:"required"`
}

// @Summary Create Evaluation
// @Description Stores an evaluation with its criterion scores; the total is always the sum of the scores
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param request body CreateEvaluationRequest true "Evaluation data"
// @Success 201 {object} models.Evaluation
// @Security BearerAuth
// @Router /evaluaciones [post]
func (h *EvaluationHandler) Create(c *gin.Context) {
	var req CreateEvaluationRequest
	if err := BindNestedOrFlat(c, "evaluacion", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EmployeeID == 0 || len(req.Scores) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado y puntuaciones son requeridos"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_evaluacion no válida, se espera AAAA-MM-DD"})
		return
	}

	evaluation := &models.Evaluation{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Evaluator:  req.Evaluator,
		Comments:   req.Comments,
	}
	if err := h.evaluationService.Create(c.Request.Context(), evaluation, req.Scores, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"evaluacion": evaluation})
}

type RescoreRequest struct {
	Scores []services.ScoreInput `json:"puntuaciones" binding:"required"`
}

// @Summary Rescore Evaluation
// @Description Replaces every criterion score of the evaluation and recomputes the total
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path int true "Evaluation ID"
// @Param request body RescoreRequest true "New scores"
// @Success 200 {object} models.Evaluation
// @Security BearerAuth
// @Router /evaluaciones/{id}/puntuaciones [put]
func (h *EvaluationHandler) Rescore(c *gin.Context) {
	var req RescoreRequest
	if err := BindNestedOrFlat(c, "evaluacion", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Scores) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "puntuaciones es requerido"})
		return
	}

	evaluation, err := h.evaluationService.Rescore(c.Request.Context(), parseID(c, "id"), req.Scores, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluacion": evaluation})
}

// @Summary Delete Evaluation
// @Description Deactivates the evaluation; the record stays for history
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /evaluaciones/{id} [delete]
func (h *EvaluationHandler) Destroy(c *gin.Context) {
	if err := h.evaluationService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Evaluación eliminada"})
}

// @Summary List Evaluation Criteria
// @Tags Evaluations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /criterios [get]
func (h *EvaluationHandler) IndexCriteria(c *gin.Context) {
	query := parseListQuery(c)
	criteria, total, err := h.evaluationService.ListCriteria(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"criterios": criteria, "pagination": paginationMeta(query, total)})
}

// @Summary Get Evaluation Criterion
// @Tags Evaluations
// @Produce json
// @Param id path int true "Criterion ID"
// @Success 200 {object} models.Criterion
// @Security BearerAuth
// @Router /criterios/{id} [get]
func (h *EvaluationHandler) ShowCriterion(c *gin.Context) {
	criterion, err := h.evaluationService.FindCriterionByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"criterio": criterion})
}

type CreateCriterionRequest struct {
	Name        string  `json:"nombre_criterio" binding:"required"`
	Description *string `json:"descripcion"`
}

// @Summary Create Evaluation Criterion
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param request body CreateCriterionRequest true "Criterion data"
// @Success 201 {object} models.Criterion
// @Security BearerAuth
// @Router /criterios [post]
func (h *EvaluationHandler) CreateCriterion(c *gin.Context) {
	var req CreateCriterionRequest
	if err := BindNestedOrFlat(c, "criterio", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del criterio es requerido"})
		return
	}

	criterion := &models.Criterion{Name: req.Name, Description: req.Description, Active: true}
	if err := h.evaluationService.CreateCriterion(c.Request.Context(), criterion, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"criterio": criterion})
}

type UpdateCriterionRequest struct {
	Name        *string `json:"nombre_criterio"`
	Description *string `json:"descripcion"`
}

// @Summary Update Evaluation Criterion
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path int true "Criterion ID"
// @Param request body UpdateCriterionRequest true "Fields to update"
// @Success 200 {object} models.Criterion
// @Security BearerAuth
// @Router /criterios/{id} [put]
func (h *EvaluationHandler) UpdateCriterion(c *gin.Context) {
	var req UpdateCriterionRequest
	if err := BindNestedOrFlat(c, "criterio", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criterion, err := h.evaluationService.UpdateCriterion(c.Request.Context(), parseID(c, "id"), req.Name, req.Description, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"criterio": criterion})
}

// @Summary Delete Evaluation Criterion
// @Description Deactivates the criterion; past evaluation details keep pointing to it
// @Tags Evaluations
// @Produce json
// @Param id path int true "Criterion ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /criterios/{id} [delete]
func (h *EvaluationHandler) DestroyCriterion(c *gin.Context) {
	if err := h.evaluationService.DeleteCriterion(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Criterio eliminado"})
}
