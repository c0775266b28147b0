package repository

import (
	"context"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

// InventoryCategoryRepository defines the interface for inventory category data access.
// Categories soft-delete through the activo flag.
type InventoryCategoryRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.InventoryCategory, error)
	List(ctx context.Context, query *ListQuery) ([]models.InventoryCategory, int64, error)
	Create(ctx context.Context, tx *gorm.DB, category *models.InventoryCategory) error
	Save(ctx context.Context, tx *gorm.DB, category *models.InventoryCategory) error
}

type inventoryCategoryRepository struct {
	db *gorm.DB
}

// NewInventoryCategoryRepository creates a new inventory category repository
func NewInventoryCategoryRepository(db *gorm.DB) InventoryCategoryRepository {
	return &inventoryCategoryRepository{db: db}
}

func (r *inventoryCategoryRepository) FindActiveByID(ctx context.Context, id uint) (*models.InventoryCategory, error) {
	var category models.InventoryCategory
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *inventoryCategoryRepository) List(ctx context.Context, query *ListQuery) ([]models.InventoryCategory, int64, error) {
	var categories []models.InventoryCategory
	var total int64

	db := r.db.WithContext(ctx).Model(&models.InventoryCategory{}).Where("activo = ?", true)

	if query.Search != "" {
		db = db.Where("nombre_categoria ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Order("nombre_categoria ASC").
		Find(&categories).Error
	return categories, total, err
}

func (r *inventoryCategoryRepository) Create(ctx context.Context, tx *gorm.DB, category *models.InventoryCategory) error {
	return tx.WithContext(ctx).Create(category).Error
}

func (r *inventoryCategoryRepository) Save(ctx context.Context, tx *gorm.DB, category *models.InventoryCategory) error {
	return tx.WithContext(ctx).Save(category).Error
}

// ProductRepository defines the interface for product data access.
// Products soft-delete through the activo flag.
type ProductRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, query *ListQuery) ([]models.Product, int64, error)
	FindLowStock(ctx context.Context) ([]models.Product, error)
	CountLowStock(ctx context.Context) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, product *models.Product) error
	Save(ctx context.Context, tx *gorm.DB, product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindActiveByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("activo = ?", true).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, query *ListQuery) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Product{}).Where("activo = ?", true)

	if query.Search != "" {
		db = db.Where("nombre_producto ILIKE ?", "%"+query.Search+"%")
	}
	if query.Filters["id_categoria"] != "" {
		db = db.Where("id_categoria = ?", query.Filters["id_categoria"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Category").
		Order("nombre_producto ASC").
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) FindLowStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("activo = ? AND stock_actual <= stock_minimo", true).
		Order("nombre_producto ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) CountLowStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("activo = ? AND stock_actual <= stock_minimo", true).
		Count(&total).Error
	return total, err
}

func (r *productRepository) Create(ctx context.Context, tx *gorm.DB, product *models.Product) error {
	return tx.WithContext(ctx).Omit("Category").Create(product).Error
}

func (r *productRepository) Save(ctx context.Context, tx *gorm.DB, product *models.Product) error {
	return tx.WithContext(ctx).Omit("Category").Save(product).Error
}

// InventoryMovementRepository defines the interface for stock movement data access.
// Movements soft-delete through the activo flag.
type InventoryMovementRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.InventoryMovement, error)
	List(ctx context.Context, query *ListQuery) ([]models.InventoryMovement, int64, error)
	Create(ctx context.Context, tx *gorm.DB, movement *models.InventoryMovement) error
	Save(ctx context.Context, tx *gorm.DB, movement *models.InventoryMovement) error
}

type inventoryMovementRepository struct {
	db *gorm.DB
}

// NewInventoryMovementRepository creates a new inventory movement repository
func NewInventoryMovementRepository(db *gorm.DB) InventoryMovementRepository {
	return &inventoryMovementRepository{db: db}
}

func (r *inventoryMovementRepository) FindActiveByID(ctx context.Context, id uint) (*models.InventoryMovement, error) {
	var movement models.InventoryMovement
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("activo = ?", true).
		First(&movement, id).Error
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (r *inventoryMovementRepository) List(ctx context.Context, query *ListQuery) ([]models.InventoryMovement, int64, error) {
	var movements []models.InventoryMovement
	var total int64

	db := r.db.WithContext(ctx).Model(&models.InventoryMovement{}).Where("activo = ?", true)

	if query.Filters["id_producto"] != "" {
		db = db.Where("id_producto = ?", query.Filters["id_producto"])
	}
	if query.Filters["tipo_movimiento"] != "" {
		db = db.Where("tipo_movimiento = ?", query.Filters["tipo_movimiento"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Product").
		Order("fecha_movimiento DESC").
		Find(&movements).Error
	return movements, total, err
}

func (r *inventoryMovementRepository) Create(ctx context.Context, tx *gorm.DB, movement *models.InventoryMovement) error {
	return tx.WithContext(ctx).Omit("Product").Create(movement).Error
}

func (r *inventoryMovementRepository) Save(ctx context.Context, tx *gorm.DB, movement *models.InventoryMovement) error {
	return tx.WithContext(ctx).Omit("Product").Save(movement).Error
}
