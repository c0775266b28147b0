package services

import (
	"context"
	"errors"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/audit"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"gorm.io/gorm"
)

// WellnessService handles wellness activities
type WellnessService struct {
	repo     repository.WellnessRepository
	db       *gorm.DB
	recorder *audit.Recorder
}

func NewWellnessService(repo repository.WellnessRepository, db *gorm.DB, recorder *audit.Recorder) *WellnessService {
	return &WellnessService{repo: repo, db: db, recorder: recorder}
}

// UpdateWellnessInput carries the optional fields of an activity update
type UpdateWellnessInput struct {
	Name        *string
	Description *string
	Date        *time.Time
}

func (s *WellnessService) FindByID(ctx context.Context, id uint) (*models.WellnessActivity, error) {
	activity, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *WellnessService) List(ctx context.Context, query *repository.ListQuery) ([]models.WellnessActivity, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *WellnessService) Create(ctx context.Context, activity *models.WellnessActivity, actor *audit.Actor) error {
	activity.Active = true
	if actor != nil {
		activity.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, activity); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, activity, actor)
	})
}

func (s *WellnessService) Update(ctx context.Context, id uint, input UpdateWellnessInput, actor *audit.Actor) (*models.WellnessActivity, error) {
	activity, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(activity)

	if input.Name != nil {
		activity.Name = *input.Name
	}
	if input.Description != nil {
		activity.Description = input.Description
	}
	if input.Date != nil {
		activity.Date = *input.Date
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, activity); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, activity, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete deactivates the activity
func (s *WellnessService) Delete(ctx context.Context, id uint, actor *audit.Actor) error {
	activity, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(activity)

	activity.Active = false

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Save(ctx, tx, activity); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, activity, previous, actor)
	})
}
