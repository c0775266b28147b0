package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// PayrollHandler serves nominas plus their receipt and export downloads
type PayrollHandler struct {
	payrollService *services.PayrollService
	reportService  *services.ReportService
	exportService  *services.ExportService
}

func NewPayrollHandler(payrollService *services.PayrollService, reportService *services.ReportService, exportService *services.ExportService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
		reportService:  reportService,
		exportService:  exportService,
	}
}

// @Summary List Payrolls
// @Tags Payrolls
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param id_empleado query int false "Filter by employee"
// @Param mes query int false "Filter by month"
// @Param anio query int false "Filter by year"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /nominas [get]
func (h *PayrollHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_empleado"] = c.Query("id_empleado")
	query.Filters["mes"] = c.Query("mes")
	query.Filters["anio"] = c.Query("anio")

	records, total, err := h.payrollService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nominas": records, "pagination": paginationMeta(query, total)})
}

// @Summary Get Payroll
// @Tags Payrolls
// @Produce json
// @Param id path int true "Payroll ID"
// @Success 200 {object} models.Payroll
// @Security BearerAuth
// @Router /nominas/{id} [get]
func (h *PayrollHandler) Show(c *gin.Context) {
	record, err := h.payrollService.FindByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nomina": record})
}

type CreatePayrollRequest struct {
	EmployeeID      uint     `json:"id_empleado" binding:"required"`
	Month           int      `json:"mes" binding:"required"`
	Year            int      `json:"anio" binding:"required"`
	BaseSalary      *float64 `json:"salario_base"`
	OvertimeHours   float64  `json:"horas_extras"`
	Commissions     float64  `json:"comisiones"`
	IncomeTax       float64  `json:"isr"`
	OtherDeductions float64  `json:"otras_deducciones"`
}

// @Summary Create Payroll
// @Description Computes the payroll for one employee and period; computed columns are derived server side
// @Tags Payrolls
// @Accept json
// @Produce json
// @Param request body CreatePayrollRequest true "Payroll input"
// @Success 201 {object} models.Payroll
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /nominas [post]
func (h *PayrollHandler) Create(c *gin.Context) {
	var req CreatePayrollRequest
	if err := BindNestedOrFlat(c, "nomina", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EmployeeID == 0 || req.Month == 0 || req.Year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado, mes y anio son requeridos"})
		return
	}

	record, err := h.payrollService.Create(c.Request.Context(), services.CreatePayrollInput{
		EmployeeID:      req.EmployeeID,
		Month:           req.Month,
		Year:            req.Year,
		BaseSalary:      req.BaseSalary,
		OvertimeHours:   req.OvertimeHours,
		Commissions:     req.Commissions,
		IncomeTax:       req.IncomeTax,
		OtherDeductions: req.OtherDeductions,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"nomina": record})
}

type UpdatePayrollRequest struct {
	BaseSalary      *float64 `json:"salario_base"`
	OvertimeHours   *float64 `json:"horas_extras"`
	Commissions     *float64 `json:"comisiones"`
	IncomeTax       *float64 `json:"isr"`
	OtherDeductions *float64 `json:"otras_deducciones"`
}

// @Summary Update Payroll
// @Description Edits payroll inputs and recomputes every derived column
// @Tags Payrolls
// @Accept json
// @Produce json
// @Param id path int true "Payroll ID"
// @Param request body UpdatePayrollRequest true "Fields to update"
// @Success 200 {object} models.Payroll
// @Security BearerAuth
// @Router /nominas/{id} [put]
func (h *PayrollHandler) Update(c *gin.Context) {
	var req UpdatePayrollRequest
	if err := BindNestedOrFlat(c, "nomina", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.payrollService.Update(c.Request.Context(), parseID(c, "id"), services.UpdatePayrollInput{
		BaseSalary:      req.BaseSalary,
		OvertimeHours:   req.OvertimeHours,
		Commissions:     req.Commissions,
		IncomeTax:       req.IncomeTax,
		OtherDeductions: req.OtherDeductions,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nomina": record})
}

// @Summary Delete Payroll
// @Description Deactivates the payroll record; the record stays for history
// @Tags Payrolls
// @Produce json
// @Param id path int true "Payroll ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /nominas/{id} [delete]
func (h *PayrollHandler) Destroy(c *gin.Context) {
	if err := h.payrollService.Delete(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nómina eliminada"})
}

// @Summary Download Payroll Receipt
// @Description Generates the PDF receipt for one payroll record
// @Tags Payrolls
// @Produce application/pdf
// @Param id path int true "Payroll ID"
// @Param token query string false "JWT for direct downloads"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /nominas/{id}/recibo [get]
func (h *PayrollHandler) Receipt(c *gin.Context) {
	buf, filename, err := h.reportService.PayrollReceiptPDF(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Download Payroll Batch Receipts
// @Description Generates a single PDF with the receipts of every payroll of the period
// @Tags Payrolls
// @Produce application/pdf
// @Param mes query int true "Month"
// @Param anio query int true "Year"
// @Param token query string false "JWT for direct downloads"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /nominas/recibos [get]
func (h *PayrollHandler) BatchReceipts(c *gin.Context) {
	month, year, ok := h.period(c)
	if !ok {
		return
	}

	buf, filename, err := h.reportService.PayrollBatchPDF(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Export Payroll Period
// @Description Exports the payrolls of a period as CSV or XLSX
// @Tags Payrolls
// @Produce application/octet-stream
// @Param mes query int true "Month"
// @Param anio query int true "Year"
// @Param formato query string false "csv or xlsx" default(xlsx)
// @Param token query string false "JWT for direct downloads"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /nominas/exportar [get]
func (h *PayrollHandler) Export(c *gin.Context) {
	month, year, ok := h.period(c)
	if !ok {
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)
	switch c.DefaultQuery("formato", "xlsx") {
	case "csv":
		data, filename, err = h.exportService.PayrollPeriodCSV(c.Request.Context(), month, year)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.exportService.PayrollPeriodXLSX(c.Request.Context(), month, year)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "formato no válido, se espera csv o xlsx"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *PayrollHandler) period(c *gin.Context) (int, int, bool) {
	month, err := strconv.Atoi(c.Query("mes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mes es requerido"})
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("anio"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "anio es requerido"})
		return 0, 0, false
	}
	return month, year, true
}
