package handlers

import (
	"fmt"
	"net/http"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// AuditHandler serves the read-only bitacora plus its exports
type AuditHandler struct {
	auditService  *services.AuditService
	exportService *services.ExportService
}

func NewAuditHandler(auditService *services.AuditService, exportService *services.ExportService) *AuditHandler {
	return &AuditHandler{auditService: auditService, exportService: exportService}
}

// @Summary List Audit Entries
// @Description The audit log is read only; entries are written by the record hooks
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param tabla_afectada query string false "Filter by table"
// @Param accion query string false "Filter by action"
// @Param usuario query string false "Filter by username"
// @Param search_term query string false "Search in descriptions"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /bitacora [get]
func (h *AuditHandler) Index(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["tabla_afectada"] = c.Query("tabla_afectada")
	query.Filters["accion"] = c.Query("accion")
	query.Filters["usuario"] = c.Query("usuario")

	entries, total, err := h.auditService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bitacora": entries, "pagination": paginationMeta(query, total)})
}

// @Summary Export Audit Log
// @Description Exports the filtered audit log as CSV or XLSX
// @Tags Audit
// @Produce application/octet-stream
// @Param tabla_afectada query string false "Filter by table"
// @Param accion query string false "Filter by action"
// @Param usuario query string false "Filter by username"
// @Param formato query string false "csv or xlsx" default(xlsx)
// @Param token query string false "JWT for direct downloads"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /bitacora/exportar [get]
func (h *AuditHandler) Export(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["tabla_afectada"] = c.Query("tabla_afectada")
	query.Filters["accion"] = c.Query("accion")
	query.Filters["usuario"] = c.Query("usuario")

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)
	switch c.DefaultQuery("formato", "xlsx") {
	case "csv":
		data, filename, err = h.exportService.AuditCSV(c.Request.Context(), query)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.exportService.AuditXLSX(c.Request.Context(), query)
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
