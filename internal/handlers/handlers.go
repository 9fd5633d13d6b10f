package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ResumeHandler      *ResumeHandler
	ApplicationHandler *ApplicationHandler
	AnalyticsHandler   *AnalyticsHandler
}
