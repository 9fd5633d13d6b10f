package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// ApplicationStatusUnderReview is the status every application starts in.
// Beyond that, status is an open string set by an admin; there is no
// enumerated set of follow-up statuses.
const ApplicationStatusUnderReview = "Under Review"
