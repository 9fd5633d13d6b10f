package services

import (
	"strings"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(db *gorm.DB, jobID string) (*models.Job, error)
	ListJobs(db *gorm.DB, limit int) ([]models.Job, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// CreateJob stores a new posting. Jobs have no uniqueness constraint and
// are immutable afterwards.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*models.Job, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, apperrors.ErrInvalidInput("job", "Title and description are required")
	}

	job := &models.Job{
		Title:       title,
		Description: description,
	}
	if location := strings.TrimSpace(req.Location); location != "" {
		job.Location = &location
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, limit int) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}
