package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/jobs"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// UserService handles account management
type UserService struct {
	repo     repository.UserRepository
	db       *gorm.DB
	recorder *audit.Recorder
	emailSvc *EmailService
	worker   *jobs.Worker
}

func NewUserService(repo repository.UserRepository, db *gorm.DB, recorder *audit.Recorder, emailSvc *EmailService, worker *jobs.Worker) *UserService {
	return &UserService{
		repo:     repo,
		db:       db,
		recorder: recorder,
		emailSvc: emailSvc,
		worker:   worker,
	}
}

// CreateUserInput carries the fields accepted on account creation
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	RoleName string
}

// UpdateUserInput carries the optional fields of an account update
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	RoleName *string
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput, actor *audit.Actor) (*models.User, error) {
	role, err := s.repo.FindRoleByName(ctx, input.RoleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("rol no válido")
		}
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		PasswordHash: hash,
		RoleID:       role.ID,
	}
	if actor != nil {
		user.CreatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, user); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, user, actor)
	})
	if err != nil {
		return nil, err
	}
	user.Role = role

	// Welcome email is best-effort; account creation never waits on it
	created := *user
	s.worker.EnqueueAsync(func(jobCtx context.Context) error {
		return s.emailSvc.SendAccountCreated(jobCtx, &created)
	})

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, input UpdateUserInput, actor *audit.Actor) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(user)

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = strings.ToLower(*input.Email)
	}
	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.RoleName != nil {
		role, err := s.repo.FindRoleByName(ctx, *input.RoleName)
		if err != nil {
			return nil, errors.New("rol no válido")
		}
		user.RoleID = role.ID
		user.Role = role
	}
	if actor != nil {
		user.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, user); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, user, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account permanently. The usuarios table carries no
// activo flag, so deletion is physical and audited with the final state.
func (s *UserService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, user); err != nil {
			return err
		}
		return s.recorder.AfterDelete(ctx, tx, user, actor)
	})
}
