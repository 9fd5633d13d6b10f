package repositories

import (
	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

// JobApplicationCount is one row of the per-job report.
type JobApplicationCount struct {
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
	Count    int64  `json:"count"`
}

// StatusCount is one row of the per-status report.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type AnalyticsRepository interface {
	// CountApplicationsPerJob includes jobs with zero applications.
	CountApplicationsPerJob(db *gorm.DB) ([]JobApplicationCount, error)
	CountApplicationsPerStatus(db *gorm.DB) ([]StatusCount, error)
}

type AnalyticsRepositoryImpl struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return &AnalyticsRepositoryImpl{}
}

func (r *AnalyticsRepositoryImpl) CountApplicationsPerJob(db *gorm.DB) ([]JobApplicationCount, error) {
	var rows []JobApplicationCount
	err := db.Model(&models.Job{}).
		Select("jobs.id AS job_id, jobs.title AS job_title, COUNT(applications.id) AS count").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Group("jobs.id, jobs.title").
		Order("jobs.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) CountApplicationsPerStatus(db *gorm.DB) ([]StatusCount, error) {
	var rows []StatusCount
	err := db.Model(&models.Application{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}
