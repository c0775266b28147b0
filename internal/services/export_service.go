package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportService produces downloadable CSV and XLSX files for the audit
// trail and for payroll periods.
type ExportService struct {
	auditSvc   *AuditService
	payrollSvc *PayrollService
}

func NewExportService(auditSvc *AuditService, payrollSvc *PayrollService) *ExportService {
	return &ExportService{auditSvc: auditSvc, payrollSvc: payrollSvc}
}

// AuditCSV exports the filtered audit trail as CSV
func (s *ExportService) AuditCSV(ctx context.Context, query *repository.ListQuery) ([]byte, string, error) {
	entries, _, err := s.auditSvc.List(ctx, query)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Fecha", "Acción", "Tabla", "Registro", "Usuario", "Campos Modificados", "Descripción"})
	for _, e := range entries {
		username := ""
		if e.User != nil {
			username = e.User.Username
		}
		_ = writer.Write([]string{
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Action,
			strValue(e.AffectedTable),
			strValue(e.RecordID),
			username,
			strValue(e.ChangedFields),
			e.Description,
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("auditoria_%s_%s.csv", time.Now().Format("2006-01-02"), shortID())
	return buf.Bytes(), filename, nil
}

// AuditXLSX exports the filtered audit trail as a spreadsheet
func (s *ExportService) AuditXLSX(ctx context.Context, query *repository.ListQuery) ([]byte, string, error) {
	entries, _, err := s.auditSvc.List(ctx, query)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Auditoría"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	headers := []string{"Fecha", "Acción", "Tabla", "Registro", "Usuario", "Campos Modificados", "Descripción"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, e := range entries {
		username := ""
		if e.User != nil {
			username = e.User.Username
		}
		values := []any{
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Action,
			strValue(e.AffectedTable),
			strValue(e.RecordID),
			username,
			strValue(e.ChangedFields),
			e.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("auditoria_%s_%s.xlsx", time.Now().Format("2006-01-02"), shortID())
	return buf.Bytes(), filename, nil
}

// PayrollPeriodCSV exports every payroll record of a month/year as CSV
func (s *ExportService) PayrollPeriodCSV(ctx context.Context, month, year int) ([]byte, string, error) {
	records, err := s.payrollSvc.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{fmt.Sprintf("Nómina %02d/%d", month, year)})
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{
		"Empleado", "Salario Base", "Horas Extras", "Pago Horas Extras", "Comisiones",
		"Bonificación Decreto", "Total Ingresos", "IGSS", "ISR", "Otros Descuentos",
		"Total Descuentos", "Sueldo Líquido",
	})
	for _, p := range records {
		_ = writer.Write(payrollRow(&p))
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("nomina_%02d_%d.csv", month, year)
	return buf.Bytes(), filename, nil
}

// PayrollPeriodXLSX exports every payroll record of a month/year as a
// spreadsheet
func (s *ExportService) PayrollPeriodXLSX(ctx context.Context, month, year int) ([]byte, string, error) {
	records, err := s.payrollSvc.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Nómina"
	_ = f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Nómina %02d/%d", month, year))
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	headers := []string{
		"Empleado", "Salario Base", "Horas Extras", "Pago Horas Extras", "Comisiones",
		"Bonificación Decreto", "Total Ingresos", "IGSS", "ISR", "Otros Descuentos",
		"Total Descuentos", "Sueldo Líquido",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, p := range records {
		name := ""
		if p.Employee != nil {
			name = p.Employee.FullName
		}
		values := []any{
			name, p.BaseSalary, p.OvertimeHours, p.OvertimePay, p.Commissions,
			p.StatutoryBonus, p.GrossIncome, p.SocialSecurity, p.IncomeTax,
			p.OtherDeductions, p.TotalDeductions, p.NetPay,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+4)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("nomina_%02d_%d.xlsx", month, year)
	return buf.Bytes(), filename, nil
}

func payrollRow(p *models.Payroll) []string {
	name := ""
	if p.Employee != nil {
		name = p.Employee.FullName
	}
	return []string{
		name,
		fmt.Sprintf("%.2f", p.BaseSalary),
		fmt.Sprintf("%.2f", p.OvertimeHours),
		fmt.Sprintf("%.2f", p.OvertimePay),
		fmt.Sprintf("%.2f", p.Commissions),
		fmt.Sprintf("%.2f", p.StatutoryBonus),
		fmt.Sprintf("%.2f", p.GrossIncome),
		fmt.Sprintf("%.2f", p.SocialSecurity),
		fmt.Sprintf("%.2f", p.IncomeTax),
		fmt.Sprintf("%.2f", p.OtherDeductions),
		fmt.Sprintf("%.2f", p.TotalDeductions),
		fmt.Sprintf("%.2f", p.NetPay),
	}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func shortID() string {
	return uuid.NewString()[:8]
}
