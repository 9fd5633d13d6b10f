package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyticsOverview checks the three top-level counters. Admins are
// excluded from the user count.
func TestAnalyticsOverview(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts, tx)
	helpers.CreateAndLoginApplicant(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	job := helpers.CreateTestJob(t, tx, "Counted Job", "go sql")
	helpers.CreateTestJob(t, tx, "Another Job", "python")

	applyBody := map[string]interface{}{"resume_text": "go sql experience"}
	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, userToken, tx, applyBody)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/overview", adminToken, tx, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var overview struct {
		TotalUsers        int64 `json:"total_users"`
		TotalJobs         int64 `json:"total_jobs"`
		TotalApplications int64 `json:"total_applications"`
	}
	err := json.Unmarshal([]byte(bodyStr), &overview)
	require.NoError(t, err)

	assert.Equal(t, int64(2), overview.TotalUsers)
	assert.Equal(t, int64(2), overview.TotalJobs)
	assert.Equal(t, int64(1), overview.TotalApplications)
}

// TestAnalyticsReports verifies per-job counts include postings with zero
// applications and that status counts aggregate correctly.
func TestAnalyticsReports(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	popular := helpers.CreateTestJob(t, tx, "Popular Job", "go docker")
	helpers.CreateTestJob(t, tx, "Lonely Job", "cobol fortran")

	applyBody := map[string]interface{}{"resume_text": "go docker kubernetes"}
	for i := 0; i < 2; i++ {
		res, _ := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+popular.ID, userToken, tx, applyBody)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/reports", adminToken, tx, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var reports struct {
		JobStats []struct {
			JobID    string `json:"job_id"`
			JobTitle string `json:"job_title"`
			Count    int64  `json:"count"`
		} `json:"job_stats"`
		StatusStats []struct {
			Status string `json:"status"`
			Count  int64  `json:"count"`
		} `json:"status_stats"`
	}
	err := json.Unmarshal([]byte(bodyStr), &reports)
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, s := range reports.JobStats {
		counts[s.JobTitle] = s.Count
	}
	assert.Equal(t, int64(2), counts["Popular Job"])
	assert.Equal(t, int64(0), counts["Lonely Job"])

	statusCounts := map[string]int64{}
	for _, s := range reports.StatusStats {
		statusCounts[s.Status] = s.Count
	}
	assert.Equal(t, int64(2), statusCounts["Under Review"])
}

// TestAnalytics_UserForbidden keeps regular users out.
func TestAnalytics_UserForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/analytics/overview", userToken, tx, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
