package dto

import "jobmatch_backend/internal/repositories"

type OverviewResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

type ReportsResponse struct {
	JobStats    []repositories.JobApplicationCount `json:"job_stats"`
	StatusStats []repositories.StatusCount         `json:"status_stats"`
}
