package repository

import (
	"context"
	"errors"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user account data access
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	FindRoleByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context, query *ListQuery) ([]models.User, int64, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	Save(ctx context.Context, tx *gorm.DB, user *models.User) error
	Delete(ctx context.Context, tx *gorm.DB, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLogin resolves a user by username or email, matching the historical
// login behavior where either identifier is accepted.
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("nombre_usuario = ? OR LOWER(correo) = LOWER(?)", login, login).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).
		Where("nombre_rol = ?", name).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) List(ctx context.Context, query *ListQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := r.db.WithContext(ctx).Model(&models.User{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("nombre_usuario ILIKE ? OR correo ILIKE ?", search, search)
	}
	if query.Filters["id_rol"] != "" {
		db = db.Where("id_rol = ?", query.Filters["id_rol"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.paginate(db).
		Preload("Role").
		Order("fecha_creacion DESC").
		Find(&users).Error
	return users, total, err
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	if err := tx.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.New("ya existe un usuario con ese nombre o correo")
		}
		return err
	}
	return nil
}

func (r *userRepository) Save(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return tx.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return tx.WithContext(ctx).Delete(user).Error
}

// isDuplicateKeyError detects a PostgreSQL unique constraint violation
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
