package services

import (
	"context"
	"testing"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Mock ProductRepository
type mockProductRepository struct {
	repository.ProductRepository
	mockFindActiveByID func(ctx context.Context, id uint) (*models.Product, error)
}

func (m *mockProductRepository) FindActiveByID(ctx context.Context, id uint) (*models.Product, error) {
	if m.mockFindActiveByID != nil {
		return m.mockFindActiveByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func newInventoryServiceForTest(productRepo repository.ProductRepository) *InventoryService {
	return NewInventoryService(nil, productRepo, nil, nil, audit.NewRecorder(nil))
}

func TestRegisterMovementValidation(t *testing.T) {
	productRepo := &mockProductRepository{
		mockFindActiveByID: func(ctx context.Context, id uint) (*models.Product, error) {
			return &models.Product{ID: id, Name: "Resma papel", CurrentStock: 5, Active: true}, nil
		},
	}
	svc := newInventoryServiceForTest(productRepo)
	actor := &audit.Actor{ID: 1, Username: "admin"}

	t.Run("Quantity Must Be Positive", func(t *testing.T) {
		err := svc.RegisterMovement(context.Background(), &models.InventoryMovement{
			ProductID: 1,
			Type:      models.MovementIn,
			Quantity:  0,
		}, actor)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "cantidad")
	})

	t.Run("Unknown Movement Type", func(t *testing.T) {
		err := svc.RegisterMovement(context.Background(), &models.InventoryMovement{
			ProductID: 1,
			Type:      "Ajuste",
			Quantity:  3,
		}, actor)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "tipo de movimiento")
	})

	t.Run("Withdrawal Exceeding Stock", func(t *testing.T) {
		err := svc.RegisterMovement(context.Background(), &models.InventoryMovement{
			ProductID: 1,
			Type:      models.MovementOut,
			Quantity:  6,
		}, actor)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "stock insuficiente")
		assert.Contains(t, err.Error(), "disponible: 5")
	})

	t.Run("Unknown Product", func(t *testing.T) {
		missing := newInventoryServiceForTest(&mockProductRepository{})
		err := missing.RegisterMovement(context.Background(), &models.InventoryMovement{
			ProductID: 99,
			Type:      models.MovementIn,
			Quantity:  3,
		}, actor)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "producto no encontrado")
	})
}

func TestFindProductByIDNotFound(t *testing.T) {
	svc := newInventoryServiceForTest(&mockProductRepository{})

	_, err := svc.FindProductByID(context.Background(), 123)

	assert.ErrorIs(t, err, ErrNotFound)
}
