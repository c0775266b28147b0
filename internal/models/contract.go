package models

import (
	"strconv"
	"time"
)

// Contract type values for contratos.tipo_contrato
const (
	ContractIndefinite = "Indefinido"
	ContractTemporary  = "Temporal"
	ContractPerProject = "Por Obra"
	ContractInternship = "Prácticas"
)

// ContractTypes lists every accepted tipo_contrato value
var ContractTypes = []string{ContractIndefinite, ContractTemporary, ContractPerProject, ContractInternship}

// Contract represents an employment contract. Contracts are hard-deleted;
// the table carries no activo flag.
type Contract struct {
	ID           uint       `gorm:"column:id_contrato;primaryKey;autoIncrement" json:"id_contrato"`
	EmployeeID   uint       `gorm:"column:id_empleado;not null" json:"id_empleado"`
	Type         string     `gorm:"column:tipo_contrato;size:50;not null" json:"tipo_contrato"`
	StartDate    time.Time  `gorm:"column:fecha_inicio;type:date;not null" json:"fecha_inicio"`
	EndDate      *time.Time `gorm:"column:fecha_fin;type:date" json:"fecha_fin"`
	Observations *string    `gorm:"column:observaciones;type:text" json:"observaciones"`
	CreatedBy    *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy    *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt    time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt    *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"empleado,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatedBy" json:"creador,omitempty"`
	Updater  *User     `gorm:"foreignKey:UpdatedBy" json:"actualizador,omitempty"`
}

// TableName specifies the table name for Contract
func (Contract) TableName() string {
	return "contratos"
}

func (c *Contract) RecordID() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

func (c *Contract) TrackedFields() map[string]any {
	return map[string]any{
		"id_empleado":   c.EmployeeID,
		"tipo_contrato": c.Type,
		"fecha_inicio":  c.StartDate,
		"fecha_fin":     c.EndDate,
		"observaciones": c.Observations,
	}
}

// IsValidContractType reports whether t is an accepted tipo_contrato
func IsValidContractType(t string) bool {
	for _, v := range ContractTypes {
		if v == t {
			return true
		}
	}
	return false
}
