package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestCreateResume uploads a resume and lists it back.
func TestCreateResume(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginApplicant(t, ts, tx)

	resumeBody := map[string]interface{}{
		"content": "go postgres rest apis five years experience",
	}
	createRes, createBodyStr := ts.SendRequest(t, "POST", "/api/v1/resumes", token, tx, resumeBody)

	assert.Equal(t, http.StatusCreated, createRes.StatusCode)

	var created models.Resume
	err := json.Unmarshal([]byte(createBodyStr), &created)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/resumes", token, tx, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, "go postgres rest apis")
}

// TestCreateResume_EmptyContent rejects whitespace-only content.
func TestCreateResume_EmptyContent(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginApplicant(t, ts, tx)

	resumeBody := map[string]interface{}{
		"content": "   \n\t  ",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/resumes", token, tx, resumeBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "must not be empty")
}

// TestLatestResume_NoneOnFile returns 404 when the user never uploaded.
func TestLatestResume_NoneOnFile(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginApplicant(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/resumes/latest", token, tx, nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Resume not found")
}

// TestLatestResume_ReturnsNewest verifies the newest upload wins.
func TestLatestResume_ReturnsNewest(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginApplicant(t, ts, tx)

	helpers.CreateTestResume(t, tx, user.ID, "old resume text")
	time.Sleep(10 * time.Millisecond)
	helpers.CreateTestResume(t, tx, user.ID, "new resume text")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/resumes/latest", token, tx, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "new resume text")
	assert.NotContains(t, bodyStr, "old resume text")
}

// TestListResumes_OnlyOwn verifies users never see each other's resumes.
func TestListResumes_OnlyOwn(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tokenA, userA := helpers.CreateAndLoginApplicant(t, ts, tx)
	_, userB := helpers.CreateAndLoginApplicant(t, ts, tx)

	helpers.CreateTestResume(t, tx, userA.ID, "resume of user a")
	helpers.CreateTestResume(t, tx, userB.ID, "resume of user b")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/resumes", tokenA, tx, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "resume of user a")
	assert.NotContains(t, bodyStr, "resume of user b")
}
