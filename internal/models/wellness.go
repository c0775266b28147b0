package models

import (
	"strconv"
	"time"
)

// WellnessActivity represents an employee wellness event
type WellnessActivity struct {
	ID          uint      `gorm:"column:id_bienestar;primaryKey;autoIncrement" json:"id_bienestar"`
	Name        string    `gorm:"column:nombre_actividad;size:100;not null" json:"nombre_actividad"`
	Description *string   `gorm:"column:descripcion;type:text" json:"descripcion"`
	Date        time.Time `gorm:"column:fecha_actividad;type:date;not null" json:"fecha_actividad"`
	Active      bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedBy   *uint     `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name for WellnessActivity
func (WellnessActivity) TableName() string {
	return "bienestar"
}

func (w *WellnessActivity) RecordID() string {
	return strconv.FormatUint(uint64(w.ID), 10)
}

func (w *WellnessActivity) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_actividad": w.Name,
		"descripcion":      w.Description,
		"fecha_actividad":  w.Date,
		"activo":           w.Active,
	}
}
