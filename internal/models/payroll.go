package models

import (
	"strconv"
	"time"
)

// Payroll represents one employee-period payroll computation. The computed
// columns are always re-derived by the payroll calculator from the input
// columns; they are never edited independently.
type Payroll struct {
	ID         uint `gorm:"column:id_nomina;primaryKey;autoIncrement" json:"id_nomina"`
	EmployeeID uint `gorm:"column:id_empleado;not null;index:idx_nomina_empleado" json:"id_empleado"`
	Month      int  `gorm:"column:mes;not null;index:idx_nomina_periodo" json:"mes"`
	Year       int  `gorm:"column:anio;not null;index:idx_nomina_periodo" json:"anio"`

	// Calculation inputs
	BaseSalary      float64 `gorm:"column:salario_base;type:decimal(10,2);not null;default:0" json:"salario_base"`
	OvertimeHours   float64 `gorm:"column:horas_extras;type:decimal(5,2);default:0" json:"horas_extras"`
	Commissions     float64 `gorm:"column:comisiones;type:decimal(10,2);default:0" json:"comisiones"`
	IncomeTax       float64 `gorm:"column:isr;type:decimal(10,2);default:0" json:"isr"`
	OtherDeductions float64 `gorm:"column:otros_descuentos;type:decimal(10,2);default:0" json:"otros_descuentos"`

	// Computed and stored values
	StatutoryBonus  float64 `gorm:"column:bonificacion_decreto;type:decimal(10,2);default:0" json:"bonificacion_decreto"`
	OvertimePay     float64 `gorm:"column:pago_horas_extras;type:decimal(10,2);default:0" json:"pago_horas_extras"`
	GrossIncome     float64 `gorm:"column:total_ingresos;type:decimal(10,2);default:0" json:"total_ingresos"`
	SocialSecurity  float64 `gorm:"column:deduccion_igss;type:decimal(10,2);default:0" json:"deduccion_igss"`
	TotalDeductions float64 `gorm:"column:total_descuentos;type:decimal(10,2);default:0" json:"total_descuentos"`
	NetPay          float64 `gorm:"column:sueldo_liquido;type:decimal(10,2);default:0" json:"sueldo_liquido"`

	Active    bool       `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt time.Time  `gorm:"column:fecha_generacion" json:"fecha_generacion"`
	UpdatedAt *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"empleado,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatedBy" json:"creador,omitempty"`
	Updater  *User     `gorm:"foreignKey:UpdatedBy" json:"actualizador,omitempty"`
}

// TableName specifies the table name for Payroll
func (Payroll) TableName() string {
	return "nomina"
}

func (p *Payroll) RecordID() string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

func (p *Payroll) TrackedFields() map[string]any {
	return map[string]any{
		"id_empleado":          p.EmployeeID,
		"mes":                  p.Month,
		"anio":                 p.Year,
		"salario_base":         p.BaseSalary,
		"horas_extras":         p.OvertimeHours,
		"comisiones":           p.Commissions,
		"isr":                  p.IncomeTax,
		"otros_descuentos":     p.OtherDeductions,
		"bonificacion_decreto": p.StatutoryBonus,
		"pago_horas_extras":    p.OvertimePay,
		"total_ingresos":       p.GrossIncome,
		"deduccion_igss":       p.SocialSecurity,
		"total_descuentos":     p.TotalDeductions,
		"sueldo_liquido":       p.NetPay,
		"activo":               p.Active,
	}
}
