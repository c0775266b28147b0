package services

import (
	"context"
	"testing"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Mock UserRepository (using embedding to avoid implementing all methods)
type mockUserRepository struct {
	repository.UserRepository
	mockFindByLogin func(ctx context.Context, login string) (*models.User, error)
}

func (m *mockUserRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	if m.mockFindByLogin != nil {
		return m.mockFindByLogin(ctx, login)
	}
	return nil, gorm.ErrRecordNotFound
}

// Mock AuditRepository
type mockAuditRepository struct {
	repository.AuditRepository
	entries []*models.AuditEntry
}

func (m *mockAuditRepository) Append(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 5,
	}
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	assert.NoError(t, err)
	return &models.User{
		ID:           3,
		Username:     "ccastillo",
		Email:        "ccastillo@jireh.gt",
		PasswordHash: hash,
		Role:         &models.Role{ID: 1, Name: models.RoleAdministrador},
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "contrasena123")
	userRepo := &mockUserRepository{
		mockFindByLogin: func(ctx context.Context, login string) (*models.User, error) {
			assert.Equal(t, "ccastillo", login)
			return user, nil
		},
	}
	auditRepo := &mockAuditRepository{}
	svc := NewAuthService(userRepo, auditRepo, nil, testConfig())

	result, err := svc.Login(context.Background(), "ccastillo", "contrasena123")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ccastillo", result.User.Username)
	assert.Equal(t, models.RoleAdministrador, result.User.Role)
	assert.Empty(t, auditRepo.entries)

	// The token must carry the identity claims the middleware reads
	token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(3), claims["user_id"])
	assert.Equal(t, "ccastillo", claims["username"])
	assert.Equal(t, models.RoleAdministrador, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "contrasena123")
	userRepo := &mockUserRepository{
		mockFindByLogin: func(ctx context.Context, login string) (*models.User, error) {
			return user, nil
		},
	}
	auditRepo := &mockAuditRepository{}
	svc := NewAuthService(userRepo, auditRepo, nil, testConfig())

	result, err := svc.Login(context.Background(), "ccastillo", "incorrecta")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)

	// The attempt leaves a trail without an attributed user
	assert.Len(t, auditRepo.entries, 1)
	assert.Equal(t, models.AuditActionLoginFailed, auditRepo.entries[0].Action)
	assert.Nil(t, auditRepo.entries[0].UserID)
	assert.Contains(t, auditRepo.entries[0].Description, "ccastillo")
}

func TestLoginUnknownUser(t *testing.T) {
	auditRepo := &mockAuditRepository{}
	svc := NewAuthService(&mockUserRepository{}, auditRepo, nil, testConfig())

	result, err := svc.Login(context.Background(), "nadie", "lo-que-sea")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
	assert.Len(t, auditRepo.entries, 1)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("mi-contrasena")
	assert.NoError(t, err)
	assert.NotEqual(t, "mi-contrasena", hash)

	assert.True(t, VerifyPassword("mi-contrasena", hash))
	assert.False(t, VerifyPassword("otra-contrasena", hash))
}
