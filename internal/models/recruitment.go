package models

import (
	"strconv"
	"time"
)

// Vacancy states for vacantes.estado
const (
	VacancyOpen      = "Abierta"
	VacancyClosed    = "Cerrada"
	VacancyInReview  = "En Revisión"
	VacancyCancelled = "Cancelada"
)

// Candidate/application pipeline states
const (
	CandidacyInReview  = "En Revisión"
	CandidacyInterview = "Entrevista"
	CandidacyRejected  = "Rechazado"
	CandidacyHired     = "Contratado"
)

// Vacancy represents a published job opening. Vacancies are hard-deleted.
type Vacancy struct {
	ID          uint       `gorm:"column:id_vacante;primaryKey;autoIncrement" json:"id_vacante"`
	Title       string     `gorm:"column:titulo;size:100;not null" json:"titulo"`
	Description *string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	PublishedAt time.Time  `gorm:"column:fecha_publicacion;type:date;not null" json:"fecha_publicacion"`
	Status      string     `gorm:"column:estado;size:20;default:Abierta" json:"estado"`
	PositionID  *uint      `gorm:"column:id_puesto" json:"id_puesto"`
	CreatedBy   *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy   *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt   time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt   *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Position *Position `gorm:"foreignKey:PositionID" json:"puesto,omitempty"`
}

// TableName specifies the table name for Vacancy
func (Vacancy) TableName() string {
	return "vacantes"
}

func (v *Vacancy) RecordID() string {
	return strconv.FormatUint(uint64(v.ID), 10)
}

func (v *Vacancy) TrackedFields() map[string]any {
	return map[string]any{
		"titulo":            v.Title,
		"descripcion":       v.Description,
		"fecha_publicacion": v.PublishedAt,
		"estado":            v.Status,
		"id_puesto":         v.PositionID,
	}
}

// Candidate links a person (modeled over the employee record) to the
// recruitment pipeline
type Candidate struct {
	ID         uint       `gorm:"column:id_candidato;primaryKey;autoIncrement" json:"id_candidato"`
	EmployeeID uint       `gorm:"column:id_empleado;not null" json:"id_empleado"`
	Status     string     `gorm:"column:estado_candidatura;size:50;not null;default:'En Revisión'" json:"estado_candidatura"`
	CreatedBy  *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy  *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt  time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt  *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"empleado,omitempty"`
}

// TableName specifies the table name for Candidate
func (Candidate) TableName() string {
	return "candidatos"
}

func (c *Candidate) RecordID() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

func (c *Candidate) TrackedFields() map[string]any {
	return map[string]any{
		"id_empleado":        c.EmployeeID,
		"estado_candidatura": c.Status,
	}
}

// Application represents one candidate applying to one vacancy
type Application struct {
	ID           uint      `gorm:"column:id_aplicacion;primaryKey;autoIncrement" json:"id_aplicacion"`
	VacancyID    *uint     `gorm:"column:id_vacante" json:"id_vacante"`
	CandidateID  *uint     `gorm:"column:id_candidato" json:"id_candidato"`
	Status       string    `gorm:"column:estado_aplicacion;size:30;default:'En revisión'" json:"estado_aplicacion"`
	Observations *string   `gorm:"column:observaciones;type:text" json:"observaciones"`
	Active       bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy    *uint     `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt    time.Time `gorm:"column:fecha_aplicacion" json:"fecha_aplicacion"`

	// Associations
	Vacancy   *Vacancy   `gorm:"foreignKey:VacancyID" json:"vacante,omitempty"`
	Candidate *Candidate `gorm:"foreignKey:CandidateID" json:"candidato,omitempty"`
}

// TableName specifies the table name for Application
func (Application) TableName() string {
	return "aplicaciones"
}

func (a *Application) RecordID() string {
	return strconv.FormatUint(uint64(a.ID), 10)
}

func (a *Application) TrackedFields() map[string]any {
	return map[string]any{
		"id_vacante":        a.VacancyID,
		"id_candidato":      a.CandidateID,
		"estado_aplicacion": a.Status,
		"observaciones":     a.Observations,
		"activo":            a.Active,
	}
}
