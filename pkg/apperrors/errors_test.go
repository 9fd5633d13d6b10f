package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	assert.True(t, Is(appErr, cause))
	assert.Equal(t, cause, appErr.Unwrap())
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	cause := errors.New("secret driver detail")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret driver detail")
	assert.Contains(t, string(data), string(CodeInternalError))
}

func TestDomainErrors_HTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrJobNotFound.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrApplicationNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrEmptyResume.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrNoResumeOnFile.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	appErr := New(CodeNotFound, "resource", "Resource not found", http.StatusNotFound)

	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestValidationError_CarriesDetails(t *testing.T) {
	details := map[string]string{"email": "Must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}
