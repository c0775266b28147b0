package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	db        *gorm.DB
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, auditRepo repository.AuditRepository, db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		db:        db,
		cfg:       cfg,
	}
}

// LoginResult represents the result of a successful login
type LoginResult struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"usuario"`
}

// Login authenticates by username or email and returns a signed JWT.
// Failed attempts leave an audit trail with a nil user: the identity was
// never established, so there is nobody to attribute the entry to.
func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordFailedLogin(ctx, login)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailedLogin(ctx, login)
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, errors.New("error al generar token")
	}

	return &LoginResult{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// recordFailedLogin appends the attempt outside any transaction. Best
// effort: a full audit table must not turn a rejected login into a 500.
func (s *AuthService) recordFailedLogin(ctx context.Context, login string) {
	entry := &models.AuditEntry{
		Action:      models.AuditActionLoginFailed,
		Description: fmt.Sprintf("Intento de inicio de sesión fallido para: %s", login),
	}
	if err := s.auditRepo.Append(ctx, s.db, entry); err != nil {
		logger.Error(fmt.Sprintf("No se pudo registrar el intento fallido de %s: %v", login, err))
	}
}

// generateJWT creates a new JWT token for a user
func (s *AuthService) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.RoleName(),
		"exp":      time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
