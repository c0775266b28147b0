package models

import (
	"strconv"
	"time"
)

// Vacation request states for vacaciones.estado
const (
	VacationPending   = "Pendiente"
	VacationApproved  = "Aprobada"
	VacationRejected  = "Rechazada"
	VacationCancelled = "Cancelada"
)

// Vacation represents an employee vacation request
type Vacation struct {
	ID         uint       `gorm:"column:id_vacacion;primaryKey;autoIncrement" json:"id_vacacion"`
	EmployeeID uint       `gorm:"column:id_empleado;not null" json:"id_empleado"`
	StartDate  time.Time  `gorm:"column:fecha_inicio;type:date;not null" json:"fecha_inicio"`
	EndDate    time.Time  `gorm:"column:fecha_fin;type:date;not null" json:"fecha_fin"`
	Status     string     `gorm:"column:estado;size:20;default:Pendiente" json:"estado"`
	CreatedBy  *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy  *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt  time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt  *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"empleado,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatedBy" json:"creador,omitempty"`
	Updater  *User     `gorm:"foreignKey:UpdatedBy" json:"actualizador,omitempty"`
}

// TableName specifies the table name for Vacation
func (Vacation) TableName() string {
	return "vacaciones"
}

func (v *Vacation) RecordID() string {
	return strconv.FormatUint(uint64(v.ID), 10)
}

func (v *Vacation) TrackedFields() map[string]any {
	return map[string]any{
		"id_empleado":  v.EmployeeID,
		"fecha_inicio": v.StartDate,
		"fecha_fin":    v.EndDate,
		"estado":       v.Status,
	}
}

// Days returns the inclusive length of the requested period in days
func (v *Vacation) Days() int {
	return int(v.EndDate.Sub(v.StartDate).Hours()/24) + 1
}

// MayApprove checks if the request can be approved
func (v *Vacation) MayApprove() bool {
	return v.Status == VacationPending
}

// MayReject checks if the request can be rejected
func (v *Vacation) MayReject() bool {
	return v.Status == VacationPending
}

// MayCancel checks if the request can be cancelled
func (v *Vacation) MayCancel() bool {
	return v.Status == VacationPending || v.Status == VacationApproved
}
