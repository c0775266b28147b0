package handlers

import (
	"net/http"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// @Summary List Employees
// @Description Get a paginated list of active employees
// @Tags Employees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or DPI"
// @Param id_puesto query int false "Filter by position"
// @Param estado_empleo query string false "Filter by employment status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /empleados [get]
func (h *EmployeeHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_puesto"] = c.Query("id_puesto")
	query.Filters["estado_empleo"] = c.Query("estado_empleo")

	employees, total, err := h.employeeService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"empleados": employees, "pagination": paginationMeta(query, total)})
}

// @Summary Get Employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /empleados/{id} [get]
func (h *EmployeeHandler) Show(c *gin.Context) {
	employee, err := h.employeeService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"empleado": employee})
}

type CreateEmployeeRequest struct {
	FullName      string  `json:"nombre_completo" binding:"required"`
	DPI           *string `json:"dpi"`
	Phone         *string `json:"telefono"`
	PersonalEmail *string `json:"correo_personal"`
	Address       *string `json:"direccion"`
	BirthDate     *string `json:"fecha_nacimiento"`
	Gender        *string `json:"genero"`
	MaritalStatus *string `json:"estado_civil"`
	HireDate      *string `json:"fecha_ingreso"`
	PositionID    *uint   `json:"id_puesto"`
	Employment    string  `json:"estado_empleo"`
}

// @Summary Create Employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee
// @Security BearerAuth
// @Router /empleados [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := BindNestedOrFlat(c, "empleado", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre completo es requerido"})
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_nacimiento no válida, se espera AAAA-MM-DD"})
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_ingreso no válida, se espera AAAA-MM-DD"})
		return
	}

	employee := &models.Employee{
		FullName:      req.FullName,
		DPI:           req.DPI,
		Phone:         req.Phone,
		PersonalEmail: req.PersonalEmail,
		Address:       req.Address,
		BirthDate:     birthDate,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		HireDate:      hireDate,
		PositionID:    req.PositionID,
		Employment:    req.Employment,
	}

	if err := h.employeeService.Create(c.Request.Context(), employee, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"empleado": employee})
}

type UpdateEmployeeRequest struct {
	FullName      *string `json:"nombre_completo"`
	DPI           *string `json:"dpi"`
	Phone         *string `json:"telefono"`
	PersonalEmail *string `json:"correo_personal"`
	Address       *string `json:"direccion"`
	Gender        *string `json:"genero"`
	MaritalStatus *string `json:"estado_civil"`
	BirthDate     *string `json:"fecha_nacimiento"`
	HireDate      *string `json:"fecha_ingreso"`
	PositionID    *uint   `json:"id_puesto"`
	Employment    *string `json:"estado_empleo"`
}

// @Summary Update Employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} models.Employee
// @Security BearerAuth
// @Router /empleados/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := BindNestedOrFlat(c, "empleado", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_nacimiento no válida, se espera AAAA-MM-DD"})
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha_ingreso no válida, se espera AAAA-MM-DD"})
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), parseID(c, "id"), services.UpdateEmployeeInput{
		FullName:      req.FullName,
		DPI:           req.DPI,
		Phone:         req.Phone,
		PersonalEmail: req.PersonalEmail,
		Address:       req.Address,
		BirthDate:     birthDate,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		HireDate:      hireDate,
		PositionID:    req.PositionID,
		Employment:    req.Employment,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"empleado": employee})
}

// @Summary Delete Employee
// @Description Deactivates the employee; the record stays for history
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /empleados/{id} [delete]
func (h *EmployeeHandler) Destroy(c *gin.Context) {
	if err := h.employeeService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Empleado eliminado"})
}

// parseDate parses an optional AAAA-MM-DD string
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
