package services

import (
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnalyticsService interface {
	GetOverview(db *gorm.DB) (*dto.OverviewResponse, error)
	GetReports(db *gorm.DB) (*dto.ReportsResponse, error)
}

type AnalyticsServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	analyticsRepo   repositories.AnalyticsRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	analyticsRepo repositories.AnalyticsRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		analyticsRepo:   analyticsRepo,
	}
}

// GetOverview counts job seekers (role "user", the admin is excluded),
// postings and applications. Pure read-only projections, nothing derived
// is stored.
func (s *AnalyticsServiceImpl) GetOverview(db *gorm.DB) (*dto.OverviewResponse, error) {
	users, err := s.userRepo.CountByRole(db, models.UserRoleUser)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	applications, err := s.applicationRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.OverviewResponse{
		TotalUsers:        users,
		TotalJobs:         jobs,
		TotalApplications: applications,
	}, nil
}

// GetReports returns applications per job (jobs with zero applications
// included) and applications per status.
func (s *AnalyticsServiceImpl) GetReports(db *gorm.DB) (*dto.ReportsResponse, error) {
	jobStats, err := s.analyticsRepo.CountApplicationsPerJob(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	statusStats, err := s.analyticsRepo.CountApplicationsPerStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReportsResponse{
		JobStats:    jobStats,
		StatusStats: statusStats,
	}, nil
}
