package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Accounts
	RouteUsers = "/api/users"
	RouteAuth  = "/api/auth"

	// Profiles
	RouteProfile           = "/api/profile"
	RouteProfileMe         = "/api/profile/me"
	RouteProfileByUser     = "/api/profile/user/{user_id}"
	RouteProfileExperience = "/api/profile/experience"
	RouteProfileExpByID    = "/api/profile/experience/{exp_id}"
	RouteProfileEducation  = "/api/profile/education"
	RouteProfileEduByID    = "/api/profile/education/{edu_id}"
	RouteProfileGithub     = "/api/profile/github/{username}"

	// Operations
	RouteMetrics = "/metrics"
	RouteHealth  = "/healthz"
)
