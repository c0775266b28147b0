package models

import (
	"strconv"
	"time"
)

// Role represents an access role. The roles table is seeded by the schema
// migrations; the API never mutates it.
type Role struct {
	ID   uint   `gorm:"column:id_rol;primaryKey;autoIncrement" json:"id_rol"`
	Name string `gorm:"column:nombre_rol;size:50;uniqueIndex;not null" json:"nombre_rol"`
}

// TableName specifies the table name for Role
func (Role) TableName() string {
	return "roles"
}

// Role name constants
const (
	RoleAdministrador = "Administrador"
	RoleSupervisor    = "Supervisor"
	RoleDigitador     = "Digitador"
	RoleEmpleado      = "Empleado"
	RoleExterno       = "Externo"
)

// User represents a system account able to authenticate and act on records
type User struct {
	ID           uint       `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"id_usuario"`
	Username     string     `gorm:"column:nombre_usuario;size:50;uniqueIndex;not null" json:"nombre_usuario"`
	Email        string     `gorm:"column:correo;size:100;uniqueIndex;not null" json:"correo"`
	PasswordHash string     `gorm:"column:contrasena_hash;type:text;not null" json:"-"`
	RoleID       uint       `gorm:"column:id_rol;not null" json:"id_rol"`
	CreatedBy    *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy    *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt    time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt    *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Role *Role `gorm:"foreignKey:RoleID" json:"roles,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "usuarios"
}

// RoleName returns the user's role name, or Externo when unloaded
func (u *User) RoleName() string {
	if u.Role == nil {
		return RoleExterno
	}
	return u.Role.Name
}

// IsAdministrador returns true if the user carries the administrator role
func (u *User) IsAdministrador() bool {
	return u.RoleName() == RoleAdministrador
}

func (u *User) RecordID() string {
	return strconv.FormatUint(uint64(u.ID), 10)
}

// TrackedFields returns the audited column set. Bookkeeping columns
// (creado_por, actualizado_por and both timestamps) are not tracked.
func (u *User) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_usuario":  u.Username,
		"correo":          u.Email,
		"contrasena_hash": u.PasswordHash,
		"id_rol":          u.RoleID,
	}
}

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID        uint      `json:"id_usuario"`
	Username  string    `json:"nombre_usuario"`
	Email     string    `json:"correo"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.RoleName(),
		CreatedAt: u.CreatedAt,
	}
}
