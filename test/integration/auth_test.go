package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow registers a user and logs in with the new credentials.
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "Flow User",
		"email":    "flow@test.com",
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", tx, registerBody)

	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")
	assert.Contains(t, regBodyStr, "access_token")

	loginBody := map[string]interface{}{
		"identifier": "flow@test.com",
		"password":   "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", tx, loginBody)

	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
}

// TestRegister_DuplicateEmail verifies the conflict path, including
// case-insensitive email comparison.
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Name:       "User One",
		Email:      "duplicate@test.com",
		Credential: "pass12345",
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "Duplicate@Test.com",
		"password": "password_is_long_enough_123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", tx, duplicateBody)

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "already exists")
}

// TestRegister_NeverGrantsAdmin confirms registration always produces a
// regular user even if a role is smuggled into the payload.
func TestRegister_NeverGrantsAdmin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "Sneaky User",
		"email":    "sneaky@test.com",
		"password": "super_password123",
		"role":     "admin",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", tx, registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)

	var resp struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	err := json.Unmarshal([]byte(regBodyStr), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "user", resp.User.Role)
}

// TestLogin_BadPassword verifies a wrong password yields 401 without
// leaking which part of the credentials failed.
func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Name:       "Test User",
		Email:      "badpass@test.com",
		Credential: "correct-password",
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"identifier": "badpass@test.com",
		"password":   "WRONG-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", tx, loginBody)

	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Invalid credentials")
}

// TestLogin_ByName verifies the identifier also matches the display name,
// case-insensitively.
func TestLogin_ByName(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Name:       "Greta Larsen",
		Email:      "greta@test.com",
		Credential: "correct-password",
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"identifier": "greta larsen",
		"password":   "correct-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", tx, loginBody)

	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "greta@test.com")
}

// TestLogin_UnknownIdentifier verifies an unknown identifier yields the
// same 401 as a wrong password.
func TestLogin_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	loginBody := map[string]interface{}{
		"identifier": "nobody@test.com",
		"password":   "whatever123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", tx, loginBody)

	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Invalid credentials")
}

// TestGetMe returns the authenticated user's own profile.
func TestGetMe(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginApplicant(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users/me", token, tx, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)
}

// TestGetMe_NoToken rejects unauthenticated access.
func TestGetMe_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", "", tx, nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
