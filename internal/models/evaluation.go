package models

import (
	"strconv"
	"time"
)

// Evaluation represents a performance evaluation for an employee
type Evaluation struct {
	ID         uint       `gorm:"column:id_evaluacion;primaryKey;autoIncrement" json:"id_evaluacion"`
	EmployeeID uint       `gorm:"column:id_empleado;not null" json:"id_empleado"`
	Date       *time.Time `gorm:"column:fecha_evaluacion;type:date" json:"fecha_evaluacion"`
	Evaluator  *string    `gorm:"column:evaluador;size:100" json:"evaluador"`
	Comments   *string    `gorm:"column:comentarios;type:text" json:"comentarios"`
	TotalScore *float64   `gorm:"column:puntuacion_total;type:decimal(5,2)" json:"puntuacion_total"`
	Active     bool       `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy  *uint      `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt  time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`

	// Associations
	Employee *Employee          `gorm:"foreignKey:EmployeeID" json:"empleado,omitempty"`
	Details  []EvaluationDetail `gorm:"foreignKey:EvaluationID" json:"detalles,omitempty"`
}

// TableName specifies the table name for Evaluation
func (Evaluation) TableName() string {
	return "evaluaciones"
}

func (e *Evaluation) RecordID() string {
	return strconv.FormatUint(uint64(e.ID), 10)
}

func (e *Evaluation) TrackedFields() map[string]any {
	return map[string]any{
		"id_empleado":      e.EmployeeID,
		"fecha_evaluacion": e.Date,
		"evaluador":        e.Evaluator,
		"comentarios":      e.Comments,
		"puntuacion_total": e.TotalScore,
		"activo":           e.Active,
	}
}

// Criterion represents one evaluable aspect scored during evaluations
type Criterion struct {
	ID          uint      `gorm:"column:id_criterio;primaryKey;autoIncrement" json:"id_criterio"`
	Name        string    `gorm:"column:nombre_criterio;size:100;not null" json:"nombre_criterio"`
	Description *string   `gorm:"column:descripcion;type:text" json:"descripcion"`
	Active      bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy   *uint     `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name for Criterion
func (Criterion) TableName() string {
	return "criterios"
}

func (c *Criterion) RecordID() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

func (c *Criterion) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_criterio": c.Name,
		"descripcion":     c.Description,
		"activo":          c.Active,
	}
}

// EvaluationDetail holds the score of a single criterion inside an
// evaluation. Details are hard-deleted together with their evaluation.
type EvaluationDetail struct {
	ID           uint      `gorm:"column:id_detalle;primaryKey;autoIncrement" json:"id_detalle"`
	EvaluationID uint      `gorm:"column:id_evaluacion;not null;index:idx_detalle_evaluacion" json:"id_evaluacion"`
	CriterionID  uint      `gorm:"column:id_criterio;not null" json:"id_criterio"`
	Score        float64   `gorm:"column:puntuacion;type:decimal(5,2)" json:"puntuacion"`
	CreatedBy    *uint     `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt    time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`

	// Associations
	Criterion *Criterion `gorm:"foreignKey:CriterionID" json:"criterio,omitempty"`
}

// TableName specifies the table name for EvaluationDetail
func (EvaluationDetail) TableName() string {
	return "detalle_evaluacion"
}

func (d *EvaluationDetail) RecordID() string {
	return strconv.FormatUint(uint64(d.ID), 10)
}

func (d *EvaluationDetail) TrackedFields() map[string]any {
	return map[string]any{
		"id_evaluacion": d.EvaluationID,
		"id_criterio":   d.CriterionID,
		"puntuacion":    d.Score,
	}
}
