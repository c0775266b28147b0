package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// InventoryService handles categories, products and stock movements. A
// movement and its product stock adjustment commit atomically.
type InventoryService struct {
	categoryRepo repository.InventoryCategoryRepository
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
	db           *gorm.DB
	recorder     *audit.Recorder
}

func NewInventoryService(
	categoryRepo repository.InventoryCategoryRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	db *gorm.DB,
	recorder *audit.Recorder,
) *InventoryService {
	return &InventoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		db:           db,
		recorder:     recorder,
	}
}

// UpdateProductInput carries the optional fields of a product update.
// Stock is deliberately absent: it only moves through movements.
type UpdateProductInput struct {
	Name         *string
	Description  *string
	CategoryID   *uint
	UnitPrice    *float64
	MinimumStock *int
}

func (s *InventoryService) FindCategoryByID(ctx context.Context, id uint) (*models.InventoryCategory, error) {
	category, err := s.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *InventoryService) ListCategories(ctx context.Context, query *repository.ListQuery) ([]models.InventoryCategory, int64, error) {
	return s.categoryRepo.List(ctx, query)
}

func (s *InventoryService) CreateCategory(ctx context.Context, category *models.InventoryCategory, actor *audit.Actor) error {
	category.Active = true
	if actor != nil {
		category.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.Create(ctx, tx, category); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, category, actor)
	})
}

func (s *InventoryService) UpdateCategory(ctx context.Context, id uint, name *string, description *string, actor *audit.Actor) (*models.InventoryCategory, error) {
	category, err := s.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(category)

	if name != nil {
		category.Name = *name
	}
	if description != nil {
		category.Description = description
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.Save(ctx, tx, category); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, category, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deactivates the category; products keep their reference.
func (s *InventoryService) DeleteCategory(ctx context.Context, id uint, actor *audit.Actor) error {
	category, err := s.FindCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(category)

	category.Active = false

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.Save(ctx, tx, category); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, category, previous, actor)
	})
}

func (s *InventoryService) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *InventoryService) ListProducts(ctx context.Context, query *repository.ListQuery) ([]models.Product, int64, error) {
	return s.productRepo.List(ctx, query)
}

// ListLowStock returns the active products at or below their minimum stock.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.FindLowStock(ctx)
}

func (s *InventoryService) CreateProduct(ctx context.Context, product *models.Product, actor *audit.Actor) error {
	if product.UnitPrice < 0 {
		return fmt.Errorf("%w: el precio unitario no puede ser negativo", ErrValidation)
	}
	if product.CurrentStock < 0 || product.MinimumStock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", ErrValidation)
	}
	product.Active = true
	if actor != nil {
		product.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Create(ctx, tx, product); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, product, actor)
	})
}

func (s *InventoryService) UpdateProduct(ctx context.Context, id uint, input UpdateProductInput, actor *audit.Actor) (*models.Product, error) {
	product, err := s.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(product)

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", ErrValidation)
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.MinimumStock != nil {
		if *input.MinimumStock < 0 {
			return nil, fmt.Errorf("%w: el stock mínimo no puede ser negativo", ErrValidation)
		}
		product.MinimumStock = *input.MinimumStock
	}
	if actor != nil {
		product.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Save(ctx, tx, product); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, product, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deactivates the product; movement history stays.
func (s *InventoryService) DeleteProduct(ctx context.Context, id uint, actor *audit.Actor) error {
	product, err := s.FindProductByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(product)

	product.Active = false
	if actor != nil {
		product.UpdatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Save(ctx, tx, product); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, product, previous, actor)
	})
}

func (s *InventoryService) FindMovementByID(ctx context.Context, id uint) (*models.InventoryMovement, error) {
	movement, err := s.movementRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return movement, nil
}

func (s *InventoryService) ListMovements(ctx context.Context, query *repository.ListQuery) ([]models.InventoryMovement, int64, error) {
	return s.movementRepo.List(ctx, query)
}

// RegisterMovement stores the movement and adjusts the product's stock in
// the same transaction. A withdrawal larger than the current stock is
// rejected before anything is written.
func (s *InventoryService) RegisterMovement(ctx context.Context, movement *models.InventoryMovement, actor *audit.Actor) error {
	if movement.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", ErrValidation)
	}
	if movement.Type != models.MovementIn && movement.Type != models.MovementOut {
		return fmt.Errorf("%w: tipo de movimiento no válido", ErrValidation)
	}

	product, err := s.FindProductByID(ctx, movement.ProductID)
	if err != nil {
		return errors.New("producto no encontrado")
	}
	previousProduct := audit.Capture(product)

	switch movement.Type {
	case models.MovementIn:
		product.CurrentStock += movement.Quantity
	case models.MovementOut:
		if product.CurrentStock < movement.Quantity {
			return fmt.Errorf("%w: stock insuficiente (disponible: %d)", ErrValidation, product.CurrentStock)
		}
		product.CurrentStock -= movement.Quantity
	}

	movement.Active = true
	if actor != nil {
		movement.CreatedBy = &actor.ID
		product.UpdatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.movementRepo.Create(ctx, tx, movement); err != nil {
			return err
		}
		if err := s.productRepo.Save(ctx, tx, product); err != nil {
			return err
		}
		if err := s.recorder.AfterCreate(ctx, tx, movement, actor); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, product, previousProduct, actor)
	})
}

// VoidMovement deactivates a movement and reverses its stock effect.
func (s *InventoryService) VoidMovement(ctx context.Context, id uint, actor *audit.Actor) error {
	movement, err := s.FindMovementByID(ctx, id)
	if err != nil {
		return err
	}
	previousMovement := audit.Capture(movement)

	product, err := s.FindProductByID(ctx, movement.ProductID)
	if err != nil {
		return errors.New("producto no encontrado")
	}
	previousProduct := audit.Capture(product)

	switch movement.Type {
	case models.MovementIn:
		if product.CurrentStock < movement.Quantity {
			return fmt.Errorf("%w: el stock ya fue consumido, no se puede anular la entrada", ErrValidation)
		}
		product.CurrentStock -= movement.Quantity
	case models.MovementOut:
		product.CurrentStock += movement.Quantity
	}

	movement.Active = false
	if actor != nil {
		product.UpdatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.movementRepo.Save(ctx, tx, movement); err != nil {
			return err
		}
		if err := s.productRepo.Save(ctx, tx, product); err != nil {
			return err
		}
		if err := s.recorder.AfterUpdate(ctx, tx, movement, previousMovement, actor); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, product, previousProduct, actor)
	})
}
