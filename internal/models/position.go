package models

import (
	"strconv"
	"time"
)

// Career represents an academic career associated with positions
type Career struct {
	ID        uint       `gorm:"column:id_carrera;primaryKey;autoIncrement" json:"id_carrera"`
	Name      string     `gorm:"column:nombre_carrera;size:100;not null" json:"nombre_carrera"`
	Active    bool       `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
}

// TableName specifies the table name for Career
func (Career) TableName() string {
	return "carreras"
}

func (c *Career) RecordID() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

func (c *Career) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_carrera": c.Name,
		"activo":         c.Active,
	}
}

// Position represents a job position with its base salary
type Position struct {
	ID         uint       `gorm:"column:id_puesto;primaryKey;autoIncrement" json:"id_puesto"`
	Name       string     `gorm:"column:nombre_puesto;size:100;not null" json:"nombre_puesto"`
	BaseSalary float64    `gorm:"column:salario_base;type:decimal(10,2)" json:"salario_base"`
	CareerID   *uint      `gorm:"column:id_carrera" json:"id_carrera"`
	CreatedBy  *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy  *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt  time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt  *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Career *Career `gorm:"foreignKey:CareerID" json:"carrera,omitempty"`
}

// TableName specifies the table name for Position
func (Position) TableName() string {
	return "puestos"
}

func (p *Position) RecordID() string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

func (p *Position) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_puesto": p.Name,
		"salario_base":  p.BaseSalary,
		"id_carrera":    p.CareerID,
	}
}
