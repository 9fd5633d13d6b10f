package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain errors of the
recruitment core: duplicate email, missing records, empty input.
*/

// ErrNotFound converts a repository "record not found" error (such as
// gorm.ErrRecordNotFound or a repository sentinel) into an AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into an AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidInput is the factory for empty or otherwise unusable required
// fields. The core never coerces bad input silently.
func ErrInvalidInput(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrEmailAlreadyExists - registration with an email that is already taken.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with that email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials - unknown identifier or wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - malformed or expired access token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - the caller's role does not allow the action.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Jobs ---

// ErrJobNotFound - the referenced job posting does not exist.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// --- Resumes ---

// ErrResumeNotFound - the user has no resume on file (or the id is unknown).
var ErrResumeNotFound = New(
	CodeNotFound,
	"resume",
	"Resume not found",
	http.StatusNotFound,
)

// ErrEmptyResume - resume content must be non-empty.
var ErrEmptyResume = New(
	CodeValidationFailed,
	"resume",
	"Resume content must not be empty",
	http.StatusBadRequest,
)

// --- Applications ---

// ErrApplicationNotFound - the referenced application does not exist.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrNoResumeOnFile - applying without inline resume text and without any
// stored resume.
var ErrNoResumeOnFile = New(
	CodeValidationFailed,
	"application",
	"Upload a resume before applying",
	http.StatusBadRequest,
)
