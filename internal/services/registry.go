package services

// ServiceContainer bundles all services for wiring in the app package.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	ResumeService      ResumeService
	ApplicationService ApplicationService
	AnalyticsService   AnalyticsService
}
