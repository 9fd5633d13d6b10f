package auth

import (
	"errors"

	"jobmatch_backend/internal/models"
)

// Authorize is the single role check in the system: it reports whether a
// caller with the given role may act in a context requiring requiredRole.
// Route groups compose it via middleware instead of wrapping handlers.
func Authorize(role, requiredRole models.UserRole) bool {
	if requiredRole == "" {
		return true
	}
	return role == requiredRole
}

// ValidateRole rejects roles outside the known set.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleUser, models.UserRoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
