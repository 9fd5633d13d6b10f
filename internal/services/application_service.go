package services

import (
	"strings"

	"jobmatch_backend/internal/algorithms"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, userID, jobID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error)
	UpdateStatus(db *gorm.DB, applicationID, status string) error
	ListMyApplications(db *gorm.DB, userID string) ([]models.Application, error)
	ListAllRanked(db *gorm.DB) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	resumeRepo      repositories.ResumeRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	resumeRepo repositories.ResumeRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		resumeRepo:      resumeRepo,
		userRepo:        userRepo,
	}
}

// Apply creates an application for the job. Inline resume text, when
// given, is stored as a new resume; otherwise the user's latest resume is
// used. The match score is computed once here and never recomputed.
// Re-applying to the same job is allowed and creates a second row.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, userID, jobID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resumeText := strings.TrimSpace(req.ResumeText)

	var application *models.Application
	err = db.Transaction(func(tx *gorm.DB) error {
		var resume *models.Resume
		if resumeText != "" {
			resume = &models.Resume{UserID: user.ID, Content: resumeText}
			if err := s.resumeRepo.Create(tx, resume); err != nil {
				return apperrors.InternalError(err)
			}
		} else {
			latest, err := s.resumeRepo.FindLatestByUser(tx, user.ID)
			if err != nil {
				if apperrors.Is(err, repositories.ErrResumeNotFound) {
					return apperrors.ErrNoResumeOnFile
				}
				return apperrors.InternalError(err)
			}
			resume = latest
		}

		score := algorithms.ScoreResumeAgainstJob(resume.Content, job.Description)

		application = &models.Application{
			UserID:     user.ID,
			JobID:      job.ID,
			ResumeID:   resume.ID,
			Status:     models.ApplicationStatusUnderReview,
			MatchScore: score,
		}
		if err := s.applicationRepo.Create(tx, application); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ApplyResponse{
		ApplicationID: application.ID,
		JobTitle:      job.Title,
		MatchScore:    application.MatchScore,
		Status:        application.Status,
	}, nil
}

// UpdateStatus overwrites the application status with whatever string the
// admin supplied; an empty value falls back to the initial status.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, applicationID, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		status = models.ApplicationStatusUnderReview
	}

	if err := s.applicationRepo.UpdateStatus(db, applicationID, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) ListMyApplications(db *gorm.DB, userID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ListAllRanked returns every application ordered by match score,
// highest first, for admin review.
func (s *ApplicationServiceImpl) ListAllRanked(db *gorm.DB) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListAllByScore(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}
