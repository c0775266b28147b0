package models

import (
	"time"
)

// Audit actions. Values match the historical `auditoria.accion` column.
const (
	AuditActionCreate      = "CREAR"
	AuditActionUpdate      = "ACTUALIZAR"
	AuditActionDelete      = "ELIMINAR"
	AuditActionLoginFailed = "LOGIN_FAILED"
)

// AuditEntry is one immutable record of a tracked mutation. Rows are only
// ever inserted; the system never updates or deletes them.
type AuditEntry struct {
	ID            uint      `gorm:"column:id_log;primaryKey;autoIncrement" json:"id_log"`
	AffectedTable *string   `gorm:"column:tabla_afectada;size:100" json:"tabla_afectada"`
	RecordID      *string   `gorm:"column:id_registro_text;type:text" json:"id_registro_text"`
	ChangedFields *string   `gorm:"column:campo_modificado;type:text" json:"campo_modificado"`
	PreviousValue *string   `gorm:"column:valor_anterior;type:text" json:"valor_anterior"`
	NewValue      *string   `gorm:"column:valor_nuevo;type:text" json:"valor_nuevo"`
	Action        string    `gorm:"column:accion;size:50" json:"accion"`
	UserID        *uint     `gorm:"column:usuario" json:"usuario"`
	Description   string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	CreatedAt     time.Time `gorm:"column:fecha" json:"fecha"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"usuario_relacionado,omitempty"`
}

// TableName specifies the table name for AuditEntry
func (AuditEntry) TableName() string {
	return "auditoria"
}
