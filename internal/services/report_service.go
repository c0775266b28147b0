package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/storage"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"
	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/jung-kurt/gofpdf"
)

// ReportService renders payroll receipts as PDF. Single receipts use
// direct PDF drawing; the per-period batch renders an HTML template through
// wkhtmltopdf. Every generated file leaves a copy in local storage.
type ReportService struct {
	payrollSvc *PayrollService
	storage    *storage.LocalStorage
}

func NewReportService(payrollSvc *PayrollService, storage *storage.LocalStorage) *ReportService {
	return &ReportService{payrollSvc: payrollSvc, storage: storage}
}

// PayrollReceiptPDF renders the receipt of one payroll record
func (s *ReportService) PayrollReceiptPDF(ctx context.Context, payrollID uint) (*bytes.Buffer, string, error) {
	record, err := s.payrollSvc.FindByID(ctx, payrollID)
	if err != nil {
		return nil, "", err
	}

	employeeName := "N/A"
	positionName := "N/A"
	if record.Employee != nil {
		employeeName = record.Employee.FullName
		if record.Employee.Position != nil {
			positionName = record.Employee.Position.Name
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Recibo de Pago")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 8, "Empleado:")
	pdf.Cell(80, 8, employeeName)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Puesto:")
	pdf.Cell(80, 8, positionName)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Período:")
	pdf.Cell(80, 8, fmt.Sprintf("%02d/%d", record.Month, record.Year))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Ingresos")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	s.amountRow(pdf, "Salario base", record.BaseSalary)
	s.amountRow(pdf, fmt.Sprintf("Horas extras (%.2f h)", record.OvertimeHours), record.OvertimePay)
	s.amountRow(pdf, "Comisiones", record.Commissions)
	s.amountRow(pdf, "Bonificacion Decreto 37-2001", record.StatutoryBonus)
	s.amountRow(pdf, "Total ingresos", record.GrossIncome)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Descuentos")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	s.amountRow(pdf, "IGSS (4.83%)", record.SocialSecurity)
	s.amountRow(pdf, "ISR", record.IncomeTax)
	s.amountRow(pdf, "Otros descuentos", record.OtherDeductions)
	s.amountRow(pdf, "Total descuentos", record.TotalDeductions)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	s.amountRow(pdf, "Sueldo liquido", record.NetPay)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", fmt.Errorf("no se pudo generar el recibo: %w", err)
	}

	filename := fmt.Sprintf("recibo_%d_%02d_%d.pdf", record.EmployeeID, record.Month, record.Year)
	s.keepCopy(buf.Bytes(), filename)

	return buf, filename, nil
}

func (s *ReportService) amountRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(80, 6, label)
	pdf.CellFormat(40, 6, fmt.Sprintf("Q %.2f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(6)
}

var batchReceiptTemplate = template.Must(template.New("batch").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; }
.receipt { page-break-after: always; padding: 24px; }
.receipt:last-child { page-break-after: auto; }
h1 { font-size: 18px; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
td.amount { text-align: right; }
tr.total td { font-weight: bold; }
</style>
</head>
<body>
{{range .Records}}
<div class="receipt">
  <h1>Recibo de Pago — {{$.Period}}</h1>
  <p>Empleado: <strong>{{.EmployeeName}}</strong></p>
  <table>
    <tr><th>Concepto</th><th>Monto</th></tr>
    <tr><td>Salario base</td><td class="amount">Q {{printf "%.2f" .BaseSalary}}</td></tr>
    <tr><td>Pago horas extras</td><td class="amount">Q {{printf "%.2f" .OvertimePay}}</td></tr>
    <tr><td>Comisiones</td><td class="amount">Q {{printf "%.2f" .Commissions}}</td></tr>
    <tr><td>Bonificación Decreto 37-2001</td><td class="amount">Q {{printf "%.2f" .StatutoryBonus}}</td></tr>
    <tr><td>Total ingresos</td><td class="amount">Q {{printf "%.2f" .GrossIncome}}</td></tr>
    <tr><td>IGSS</td><td class="amount">Q {{printf "%.2f" .SocialSecurity}}</td></tr>
    <tr><td>ISR</td><td class="amount">Q {{printf "%.2f" .IncomeTax}}</td></tr>
    <tr><td>Otros descuentos</td><td class="amount">Q {{printf "%.2f" .OtherDeductions}}</td></tr>
    <tr><td>Total descuentos</td><td class="amount">Q {{printf "%.2f" .TotalDeductions}}</td></tr>
    <tr class="total"><td>Sueldo líquido</td><td class="amount">Q {{printf "%.2f" .NetPay}}</td></tr>
  </table>
</div>
{{end}}
</body>
</html>`))

type batchReceiptRecord struct {
	EmployeeName    string
	BaseSalary      float64
	OvertimePay     float64
	Commissions     float64
	StatutoryBonus  float64
	GrossIncome     float64
	SocialSecurity  float64
	IncomeTax       float64
	OtherDeductions float64
	TotalDeductions float64
	NetPay          float64
}

// PayrollBatchPDF renders one PDF with a receipt page per employee for the
// given period.
func (s *ReportService) PayrollBatchPDF(ctx context.Context, month, year int) (*bytes.Buffer, string, error) {
	records, err := s.payrollSvc.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrNotFound
	}

	data := struct {
		Period  string
		Records []batchReceiptRecord
	}{
		Period: fmt.Sprintf("%02d/%d", month, year),
	}
	for _, p := range records {
		name := "N/A"
		if p.Employee != nil {
			name = p.Employee.FullName
		}
		data.Records = append(data.Records, batchReceiptRecord{
			EmployeeName:    name,
			BaseSalary:      p.BaseSalary,
			OvertimePay:     p.OvertimePay,
			Commissions:     p.Commissions,
			StatutoryBonus:  p.StatutoryBonus,
			GrossIncome:     p.GrossIncome,
			SocialSecurity:  p.SocialSecurity,
			IncomeTax:       p.IncomeTax,
			OtherDeductions: p.OtherDeductions,
			TotalDeductions: p.TotalDeductions,
			NetPay:          p.NetPay,
		})
	}

	var html bytes.Buffer
	if err := batchReceiptTemplate.Execute(&html, data); err != nil {
		return nil, "", fmt.Errorf("no se pudo renderizar la plantilla: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, "", fmt.Errorf("no se pudo crear el generador de PDF: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, "", fmt.Errorf("no se pudo generar el PDF: %w", err)
	}

	filename := fmt.Sprintf("recibos_%02d_%d.pdf", month, year)
	s.keepCopy(pdfg.Buffer().Bytes(), filename)

	return pdfg.Buffer(), filename, nil
}

// keepCopy stores the generated file locally. Failures are logged, not
// returned: the download already has the bytes in hand.
func (s *ReportService) keepCopy(data []byte, filename string) {
	if s.storage == nil {
		return
	}
	if _, err := s.storage.SaveBytes(data, filename, "recibos"); err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar la copia de %s: %v", filename, err))
	}
}
