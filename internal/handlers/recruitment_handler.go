package handlers

import (
	"net/http"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// RecruitmentHandler serves vacantes, candidatos and aplicaciones
type RecruitmentHandler struct {
	recruitmentService *services.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService *services.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{recruitmentService: recruitmentService}
}

// @Summary List Vacancies
// @Tags Recruitment
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param estado query string false "Filter by state"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /vacantes [get]
func (h *RecruitmentHandler) IndexVacancies(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["estado"] = c.Query("estado")

	vacancies, total, err := h.recruitmentService.ListVacancies(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacantes": vacancies, "pagination": paginationMeta(query, total)})
}

// @Summary Get Vacancy
// @Tags Recruitment
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} models.Vacancy
// @Security BearerAuth
// @Router /vacantes/{id} [get]
func (h *RecruitmentHandler) ShowVacancy(c *gin.Context) {
	vacancy, err := h.recruitmentService.FindVacancyByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacante": vacancy})
}

type CreateVacancyRequest struct {
	Title       string  `json:"titulo" binding:"required"`
	Description *string `json:"descripcion"`
	PublishedAt *string `json:"fecha_publicacion"`
	Status      string  `json:"estado"`
	PositionID  *uint   `json:"id_puesto"`
}

// @Summary Create Vacancy
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param request body CreateVacancyRequest true "Vacancy data"
// @Success 201 {object} models.Vacancy
// @Security BearerAuth
// @Router /vacantes [post]
func (h *RecruitmentHandler) CreateVacancy(c *gin.Context) {
	var req CreateVacancyRequest
	if err := BindNestedOrFlat(c, "vacante", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El título de la vacante es requerido"})
		return
	}

	publishedAt, err := parseDate(req.PublishedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_publicacion no válida, se espera AAAA-MM-DD"})
		return
	}

	vacancy := &models.Vacancy{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		PositionID:  req.PositionID,
	}
	if publishedAt != nil {
		vacancy.PublishedAt = *publishedAt
	}
	if err := h.recruitmentService.CreateVacancy(c.Request.Context(), vacancy, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vacante": vacancy})
}

type UpdateVacancyRequest struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descripcion"`
	PublishedAt *string `json:"fecha_publicacion"`
	Status      *string `json:"estado"`
	PositionID  *uint   `json:"id_puesto"`
}

// @Summary Update Vacancy
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param id path int true "Vacancy ID"
// @Param request body UpdateVacancyRequest true "Fields to update"
// @Success 200 {object} models.Vacancy
// @Security BearerAuth
// @Router /vacantes/{id} [put]
func (h *RecruitmentHandler) UpdateVacancy(c *gin.Context) {
	var req UpdateVacancyRequest
	if err := BindNestedOrFlat(c, "vacante", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publishedAt, err := parseDate(req.PublishedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_publicacion no válida, se espera AAAA-MM-DD"})
		return
	}

	vacancy, err := h.recruitmentService.UpdateVacancy(c.Request.Context(), parseID(c, "id"), services.UpdateVacancyInput{
		Title:       req.Title,
		Description: req.Description,
		PublishedAt: publishedAt,
		Status:      req.Status,
		PositionID:  req.PositionID,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacante": vacancy})
}

// @Summary Delete Vacancy
// @Tags Recruitment
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /vacantes/{id} [delete]
func (h *RecruitmentHandler) DestroyVacancy(c *gin.Context) {
	if err := h.recruitmentService.DeleteVacancy(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vacante eliminada"})
}

// @Summary List Candidates
// @Tags Recruitment
// @Produce json
// @Param estado_candidatura query string false "Filter by candidacy state"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /candidatos [get]
func (h *RecruitmentHandler) IndexCandidates(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["estado_candidatura"] = c.Query("estado_candidatura")

	candidates, total, err := h.recruitmentService.ListCandidates(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidatos": candidates, "pagination": paginationMeta(query, total)})
}

// @Summary Get Candidate
// @Tags Recruitment
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} models.Candidate
// @Security BearerAuth
// @Router /candidatos/{id} [get]
func (h *RecruitmentHandler) ShowCandidate(c *gin.Context) {
	candidate, err := h.recruitmentService.FindCandidateByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidato": candidate})
}

type CreateCandidateRequest struct {
	EmployeeID uint   `json:"id_empleado" binding:"required"`
	Status     string `json:"estado_candidatura"`
}

// @Summary Create Candidate
// @Description Registers an internal candidate for recruitment
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param request body CreateCandidateRequest true "Candidate data"
// @Success 201 {object} models.Candidate
// @Security BearerAuth
// @Router /candidatos [post]
func (h *RecruitmentHandler) CreateCandidate(c *gin.Context) {
	var req CreateCandidateRequest
	if err := BindNestedOrFlat(c, "candidato", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EmployeeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado es requerido"})
		return
	}

	candidate := &models.Candidate{EmployeeID: req.EmployeeID, Status: req.Status}
	if err := h.recruitmentService.CreateCandidate(c.Request.Context(), candidate, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"candidato": candidate})
}

type candidateStatusRequest struct {
	Status string `json:"estado_candidatura" binding:"required"`
}

// @Summary Update Candidate Status
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param request body candidateStatusRequest true "New status"
// @Success 200 {object} models.Candidate
// @Security BearerAuth
// @Router /candidatos/{id} [put]
func (h *RecruitmentHandler) UpdateCandidate(c *gin.Context) {
	var req candidateStatusRequest
	if err := BindNestedOrFlat(c, "candidato", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estado_candidatura es requerido"})
		return
	}

	candidate, err := h.recruitmentService.UpdateCandidateStatus(c.Request.Context(), parseID(c, "id"), req.Status, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidato": candidate})
}

// @Summary Delete Candidate
// @Tags Recruitment
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /candidatos/{id} [delete]
func (h *RecruitmentHandler) DestroyCandidate(c *gin.Context) {
	if err := h.recruitmentService.DeleteCandidate(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidato eliminado"})
}

// @Summary List Applications
// @Tags Recruitment
// @Produce json
// @Param id_vacante query int false "Filter by vacancy"
// @Param id_candidato query int false "Filter by candidate"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /aplicaciones [get]
func (h *RecruitmentHandler) IndexApplications(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_vacante"] = c.Query("id_vacante")
	query.Filters["id_candidato"] = c.Query("id_candidato")

	applications, total, err := h.recruitmentService.ListApplications(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aplicaciones": applications, "pagination": paginationMeta(query, total)})
}

// @Summary Get Application
// @Tags Recruitment
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.Application
// @Security BearerAuth
// @Router /aplicaciones/{id} [get]
func (h *RecruitmentHandler) ShowApplication(c *gin.Context) {
	application, err := h.recruitmentService.FindApplicationByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aplicacion": application})
}

type CreateApplicationRequest struct {
	VacancyID   *uint `json:"id_vacante" binding:"required"`
	CandidateID *uint `json:"id_candidato" binding:"required"`
}

// @Summary Create Application
// @Description Links a candidate to a vacancy
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param request body CreateApplicationRequest true "Application data"
// @Success 201 {object} models.Application
// @Security BearerAuth
// @Router /aplicaciones [post]
func (h *RecruitmentHandler) CreateApplication(c *gin.Context) {
	var req CreateApplicationRequest
	if err := BindNestedOrFlat(c, "aplicacion", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.VacancyID == nil || req.CandidateID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_vacante e id_candidato son requeridos"})
		return
	}

	application := &models.Application{VacancyID: req.VacancyID, CandidateID: req.CandidateID}
	if err := h.recruitmentService.CreateApplication(c.Request.Context(), application, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"aplicacion": application})
}

type applicationStatusRequest struct {
	Status       string  `json:"estado_aplicacion" binding:"required"`
	Observations *string `json:"observaciones"`
}

// @Summary Update Application Status
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body applicationStatusRequest true "New status"
// @Success 200 {object} models.Application
// @Security BearerAuth
// @Router /aplicaciones/{id} [put]
func (h *RecruitmentHandler) UpdateApplication(c *gin.Context) {
	var req applicationStatusRequest
	if err := BindNestedOrFlat(c, "aplicacion", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estado_aplicacion es requerido"})
		return
	}

	application, err := h.recruitmentService.UpdateApplicationStatus(c.Request.Context(), parseID(c, "id"), req.Status, req.Observations, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aplicacion": application})
}

// @Summary Delete Application
// @Description Deactivates the application; the record stays for history
// @Tags Recruitment
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /aplicaciones/{id} [delete]
func (h *RecruitmentHandler) DestroyApplication(c *gin.Context) {
	if err := h.recruitmentService.DeleteApplication(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aplicación eliminada"})
}
