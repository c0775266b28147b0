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

// RecruitmentService handles the hiring pipeline: vacancies, candidates and
// their applications.
type RecruitmentService struct {
	vacancyRepo     repository.VacancyRepository
	candidateRepo   repository.CandidateRepository
	applicationRepo repository.ApplicationRepository
	employeeRepo    repository.EmployeeRepository
	db              *gorm.DB
	recorder        *audit.Recorder
}

func NewRecruitmentService(
	vacancyRepo repository.VacancyRepository,
	candidateRepo repository.CandidateRepository,
	applicationRepo repository.ApplicationRepository,
	employeeRepo repository.EmployeeRepository,
	db *gorm.DB,
	recorder *audit.Recorder,
) *RecruitmentService {
	return &RecruitmentService{
		vacancyRepo:     vacancyRepo,
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		employeeRepo:    employeeRepo,
		db:              db,
		recorder:        recorder,
	}
}

// UpdateVacancyInput carries the optional fields of a vacancy update
type UpdateVacancyInput struct {
	Title       *string
	Description *string
	PublishedAt *time.Time
	Status      *string
	PositionID  *uint
}

func (s *RecruitmentService) FindVacancyByID(ctx context.Context, id uint) (*models.Vacancy, error) {
	vacancy, err := s.vacancyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vacancy, nil
}

func (s *RecruitmentService) ListVacancies(ctx context.Context, query *repository.ListQuery) ([]models.Vacancy, int64, error) {
	return s.vacancyRepo.List(ctx, query)
}

func (s *RecruitmentService) CreateVacancy(ctx context.Context, vacancy *models.Vacancy, actor *audit.Actor) error {
	if vacancy.Status == "" {
		vacancy.Status = models.VacancyOpen
	}
	if vacancy.PublishedAt.IsZero() {
		vacancy.PublishedAt = time.Now()
	}
	if actor != nil {
		vacancy.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vacancyRepo.Create(ctx, tx, vacancy); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, vacancy, actor)
	})
}

func (s *RecruitmentService) UpdateVacancy(ctx context.Context, id uint, input UpdateVacancyInput, actor *audit.Actor) (*models.Vacancy, error) {
	vacancy, err := s.FindVacancyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(vacancy)

	if input.Title != nil {
		vacancy.Title = *input.Title
	}
	if input.Description != nil {
		vacancy.Description = input.Description
	}
	if input.PublishedAt != nil {
		vacancy.PublishedAt = *input.PublishedAt
	}
	if input.Status != nil {
		vacancy.Status = *input.Status
	}
	if input.PositionID != nil {
		vacancy.PositionID = input.PositionID
	}
	if actor != nil {
		vacancy.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vacancyRepo.Save(ctx, tx, vacancy); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, vacancy, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return vacancy, nil
}

// DeleteVacancy removes the opening permanently; vacantes carries no activo flag.
func (s *RecruitmentService) DeleteVacancy(ctx context.Context, id uint, actor *audit.Actor) error {
	vacancy, err := s.FindVacancyByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vacancyRepo.Delete(ctx, tx, vacancy); err != nil {
			return err
		}
		return s.recorder.AfterDelete(ctx, tx, vacancy, actor)
	})
}

func (s *RecruitmentService) FindCandidateByID(ctx context.Context, id uint) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return candidate, nil
}

func (s *RecruitmentService) ListCandidates(ctx context.Context, query *repository.ListQuery) ([]models.Candidate, int64, error) {
	return s.candidateRepo.List(ctx, query)
}

func (s *RecruitmentService) CreateCandidate(ctx context.Context, candidate *models.Candidate, actor *audit.Actor) error {
	if _, err := s.employeeRepo.FindActiveByID(ctx, candidate.EmployeeID); err != nil {
		return errors.New("empleado no encontrado")
	}
	if candidate.Status == "" {
		candidate.Status = models.CandidacyInReview
	}
	if actor != nil {
		candidate.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.candidateRepo.Create(ctx, tx, candidate); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, candidate, actor)
	})
}

func (s *RecruitmentService) UpdateCandidateStatus(ctx context.Context, id uint, status string, actor *audit.Actor) (*models.Candidate, error) {
	candidate, err := s.FindCandidateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(candidate)

	candidate.Status = status
	if actor != nil {
		candidate.UpdatedBy = &actor.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.candidateRepo.Save(ctx, tx, candidate); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, candidate, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// DeleteCandidate removes the candidate permanently; candidatos carries no activo flag.
func (s *RecruitmentService) DeleteCandidate(ctx context.Context, id uint, actor *audit.Actor) error {
	candidate, err := s.FindCandidateByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.candidateRepo.Delete(ctx, tx, candidate); err != nil {
			return err
		}
		return s.recorder.AfterDelete(ctx, tx, candidate, actor)
	})
}

func (s *RecruitmentService) FindApplicationByID(ctx context.Context, id uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return application, nil
}

func (s *RecruitmentService) ListApplications(ctx context.Context, query *repository.ListQuery) ([]models.Application, int64, error) {
	return s.applicationRepo.List(ctx, query)
}

func (s *RecruitmentService) CreateApplication(ctx context.Context, application *models.Application, actor *audit.Actor) error {
	if application.VacancyID != nil {
		if _, err := s.vacancyRepo.FindByID(ctx, *application.VacancyID); err != nil {
			return errors.New("vacante no encontrada")
		}
	}
	if application.CandidateID != nil {
		if _, err := s.candidateRepo.FindByID(ctx, *application.CandidateID); err != nil {
			return errors.New("candidato no encontrado")
		}
	}
	application.Active = true
	if actor != nil {
		application.CreatedBy = &actor.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Create(ctx, tx, application); err != nil {
			return err
		}
		return s.recorder.AfterCreate(ctx, tx, application, actor)
	})
}

func (s *RecruitmentService) UpdateApplicationStatus(ctx context.Context, id uint, status string, observations *string, actor *audit.Actor) (*models.Application, error) {
	application, err := s.FindApplicationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := audit.Capture(application)

	application.Status = status
	if observations != nil {
		application.Observations = observations
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Save(ctx, tx, application); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, application, previous, actor)
	})
	if err != nil {
		return nil, err
	}
	return application, nil
}

// DeleteApplication deactivates the application; the pipeline history stays.
func (s *RecruitmentService) DeleteApplication(ctx context.Context, id uint, actor *audit.Actor) error {
	application, err := s.FindApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	previous := audit.Capture(application)

	application.Active = false

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Save(ctx, tx, application); err != nil {
			return err
		}
		return s.recorder.AfterUpdate(ctx, tx, application, previous, actor)
	})
}
