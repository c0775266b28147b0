package handlers

import (
	"net/http"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	contractService *services.ContractService
}

func NewContractHandler(contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// @Summary List Contracts
// @Tags Contracts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param id_empleado query int false "Filter by employee"
// @Param tipo_contrato query string false "Filter by contract type"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contratos [get]
func (h *ContractHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_empleado"] = c.Query("id_empleado")
	query.Filters["tipo_contrato"] = c.Query("tipo_contrato")

	contracts, total, err := h.contractService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contratos": contracts, "pagination": paginationMeta(query, total)})
}

// @Summary Get Contract
// @Tags Contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} models.Contract
// @Security BearerAuth
// @Router /contratos/{id} [get]
func (h *ContractHandler) Show(c *gin.Context) {
	contract, err := h.contractService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contrato": contract})
}

type CreateContractRequest struct {
	EmployeeID   uint    `json:"id_empleado" binding:"required"`
	Type         string  `json:"tipo_contrato" binding:"required"`
	StartDate    string  `json:"fecha_inicio" binding:"required"`
	EndDate      *string `json:"fecha_fin"`
	Observations *string `json:"observaciones"`
}

// @Summary Create Contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body CreateContractRequest true "Contract data"
// @Success 201 {object} models.Contract
// @Security BearerAuth
// @Router /contratos [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := BindNestedOrFlat(c, "contrato", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EmployeeID == 0 || req.Type == "" || req.StartDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado, tipo_contrato y fecha_inicio son requeridos"})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_inicio no válida, se espera AAAA-MM-DD"})
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_fin no válida, se espera AAAA-MM-DD"})
		return
	}

	contract := &models.Contract{
		EmployeeID:   req.EmployeeID,
		Type:         req.Type,
		StartDate:    startDate,
		EndDate:      endDate,
		Observations: req.Observations,
	}
	if err := h.contractService.Create(c.Request.Context(), contract, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contrato": contract})
}

type UpdateContractRequest struct {
	Type         *string `json:"tipo_contrato"`
	StartDate    *string `json:"fecha_inicio"`
	EndDate      *string `json:"fecha_fin"`
	Observations *string `json:"observaciones"`
}

// @Summary Update Contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param request body UpdateContractRequest true "Fields to update"
// @Success 200 {object} models.Contract
// @Security BearerAuth
// @Router /contratos/{id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	var req UpdateContractRequest
	if err := BindNestedOrFlat(c, "contrato", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_inicio no válida, se espera AAAA-MM-DD"})
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_fin no válida, se espera AAAA-MM-DD"})
		return
	}

	contract, err := h.contractService.Update(c.Request.Context(), parseID(c, "id"), services.UpdateContractInput{
		Type:         req.Type,
		StartDate:    startDate,
		EndDate:      endDate,
		Observations: req.Observations,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contrato": contract})
}

// @Summary Delete Contract
// @Tags Contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /contratos/{id} [delete]
func (h *ContractHandler) Destroy(c *gin.Context) {
	if err := h.contractService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contrato eliminado"})
}
