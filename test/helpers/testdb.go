package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobmatch_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user in the transaction. A raw password in the
// Credential field is bcrypt-hashed first, matching what the default
// verifier stores.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) error {
	if user.Credential != "" && !strings.HasPrefix(user.Credential, "$2a$") {
		rawPassword := user.Credential
		hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash test password: %v", err)
		}
		user.Credential = string(hashed)
	}

	user.Email = strings.ToLower(user.Email)
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	result := tx.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create test user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser inserts a user directly and then logs in through
// the API so the returned token is a real one.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:       name,
		Email:      email,
		Credential: password,
		Role:       role,
	}
	err := CreateUser(t, tx, user)
	require.NoError(t, err, "Creating a test user must not fail")

	loginBody := map[string]interface{}{
		"identifier": email,
		"password":   password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", tx, loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err, "Failed to parse login response")
	assert.NotEmpty(t, loginResponse.Token, "Token must not be empty")

	return loginResponse.Token, user
}

// CreateAndLoginApplicant creates a regular job seeker with a unique email.
func CreateAndLoginApplicant(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("applicant_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Applicant", email, "password123", models.UserRoleUser)
}

// CreateAndLoginAdmin creates an admin with a unique email. Registration
// can never produce an admin, so tests insert one directly.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateTestJob inserts a job directly in the transaction.
func CreateTestJob(t *testing.T, tx *gorm.DB, title, description string) models.Job {
	job := models.Job{
		Title:       title,
		Description: description,
	}
	if err := tx.Create(&job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}

// CreateTestResume inserts a resume directly in the transaction.
func CreateTestResume(t *testing.T, tx *gorm.DB, userID, content string) models.Resume {
	resume := models.Resume{
		UserID:  userID,
		Content: content,
	}
	if err := tx.Create(&resume).Error; err != nil {
		t.Fatalf("Failed to create test resume: %v", err)
	}
	return resume
}
