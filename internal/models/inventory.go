package models

import (
	"strconv"
	"time"
)

// Inventory movement kinds for movimientos_inventario.tipo_movimiento
const (
	MovementIn  = "Entrada"
	MovementOut = "Salida"
)

// InventoryCategory groups products
type InventoryCategory struct {
	ID          uint      `gorm:"column:id_categoria;primaryKey;autoIncrement" json:"id_categoria"`
	Name        string    `gorm:"column:nombre_categoria;size:100;not null" json:"nombre_categoria"`
	Description *string   `gorm:"column:descripcion;type:text" json:"descripcion"`
	Active      bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy   *uint     `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name for InventoryCategory
func (InventoryCategory) TableName() string {
	return "categorias_inventario"
}

func (c *InventoryCategory) RecordID() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

func (c *InventoryCategory) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_categoria": c.Name,
		"descripcion":      c.Description,
		"activo":           c.Active,
	}
}

// Product represents one inventory item
type Product struct {
	ID           uint       `gorm:"column:id_producto;primaryKey;autoIncrement" json:"id_producto"`
	Name         string     `gorm:"column:nombre_producto;size:150;not null" json:"nombre_producto"`
	Description  *string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	CategoryID   *uint      `gorm:"column:id_categoria" json:"id_categoria"`
	UnitPrice    float64    `gorm:"column:precio_unitario;type:decimal(10,2);default:0" json:"precio_unitario"`
	CurrentStock int        `gorm:"column:stock_actual;default:0" json:"stock_actual"`
	MinimumStock int        `gorm:"column:stock_minimo;default:0" json:"stock_minimo"`
	Active       bool       `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy    *uint      `gorm:"column:creado_por" json:"creado_por"`
	UpdatedBy    *uint      `gorm:"column:actualizado_por" json:"actualizado_por"`
	CreatedAt    time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt    *time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`

	// Associations
	Category *InventoryCategory `gorm:"foreignKey:CategoryID" json:"categoria,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "productos"
}

func (p *Product) RecordID() string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

func (p *Product) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_producto": p.Name,
		"descripcion":     p.Description,
		"id_categoria":    p.CategoryID,
		"precio_unitario": p.UnitPrice,
		"stock_actual":    p.CurrentStock,
		"stock_minimo":    p.MinimumStock,
		"activo":          p.Active,
	}
}

// IsLowStock reports whether current stock is at or below the minimum
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}

// InventoryMovement represents a stock entry or withdrawal
type InventoryMovement struct {
	ID           uint      `gorm:"column:id_movimiento;primaryKey;autoIncrement" json:"id_movimiento"`
	ProductID    uint      `gorm:"column:id_producto;not null" json:"id_producto"`
	Type         string    `gorm:"column:tipo_movimiento;size:20;not null" json:"tipo_movimiento"`
	Quantity     int       `gorm:"column:cantidad;not null" json:"cantidad"`
	Observations *string   `gorm:"column:observaciones;type:text" json:"observaciones"`
	Active       bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedBy    *uint     `gorm:"column:creado_por" json:"creado_por"`
	CreatedAt    time.Time `gorm:"column:fecha_movimiento" json:"fecha_movimiento"`

	// Associations
	Product *Product `gorm:"foreignKey:ProductID" json:"producto,omitempty"`
}

// TableName specifies the table name for InventoryMovement
func (InventoryMovement) TableName() string {
	return "movimientos_inventario"
}

func (m *InventoryMovement) RecordID() string {
	return strconv.FormatUint(uint64(m.ID), 10)
}

func (m *InventoryMovement) TrackedFields() map[string]any {
	return map[string]any{
		"id_producto":     m.ProductID,
		"tipo_movimiento": m.Type,
		"cantidad":        m.Quantity,
		"observaciones":   m.Observations,
		"activo":          m.Active,
	}
}
