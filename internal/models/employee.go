package models

import (
	"strconv"
	"time"
)

// Employment status values for empleados.estado_empleo
const (
	EmploymentActive    = "Activo"
	EmploymentSuspended = "Suspendido"
	EmploymentRetired   = "Retirado"
)

// Employee represents one person on the payroll
type Employee struct {
	ID            uint       `gorm:"column:id_empleado;primaryKey;autoIncrement" json:"id_empleado"`
	FullName      string     `gorm:"column:nombre_completo;size:100;not null" json:"nombre_completo"`
	DPI           *string    `gorm:"column:dpi;size:13;uniqueIndex" json:"dpi"`
	Phone         *string    `gorm:"column:telefono;size:8" json:"telefono"`
	PersonalEmail *string    `gorm:"column:correo_personal;size:100" json:"correo_personal"`
	Address       *string    `gorm:"column:direccion;type:text" json:"direccion"`
	BirthDate     *time.Time `gorm:"column:fecha_nacimiento;type:date" json:"fecha_nacimiento"`
	Gender        *string    `gorm:"column:genero;size:15" json:"genero"`
	MaritalStatus *string    `gorm:"column:estado_civil;size:20" json:"estado_civil"`
	HireDate      *time.Time `gorm:"column:fecha_ingreso;type:date" json:"fecha_ingreso"`
	PositionID    *uint      `gorm:"column:id_puesto" json:"id_puesto"`
	Employment    string     `gorm:"column:estado_empleo;size:20;default:Activo" json:"estado_empleo"`
	Active        bool       `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy     *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy     *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt     time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt     *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Position *Position `gorm:"foreignKey:PositionID" json:"puesto,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatedBy" json:"creador,omitempty"`
	Updater  *User     `gorm:"foreignKey:UpdatedBy" json:"actualizador,omitempty"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "empleados"
}

func (e *Employee) RecordID() string {
	return strconv.FormatUint(uint64(e.ID), 10)
}

func (e *Employee) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_completo":  e.FullName,
		"dpi":              e.DPI,
		"telefono":         e.Phone,
		"correo_personal":  e.PersonalEmail,
		"direccion":        e.Address,
		"fecha_nacimiento": e.BirthDate,
		"genero":           e.Gender,
		"estado_civil":     e.MaritalStatus,
		"fecha_ingreso":    e.HireDate,
		"id_puesto":        e.PositionID,
		"estado_empleo":    e.Employment,
		"activo":           e.Active,
	}
}
