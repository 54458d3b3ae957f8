package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	// Accounts
	s.RegisterRouteHandler("POST "+RouteUsers, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteUsers, ChainMiddleware(s.ListUsersHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuth, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuth, ChainMiddleware(s.CurrentUserHandler(), s.APIMiddleware(s.RequireAuth())...))

	// Profiles
	s.RegisterRouteHandler("GET "+RouteProfileMe, ChainMiddleware(s.MyProfileHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteProfile, ChainMiddleware(s.UpsertProfileHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteProfile, ChainMiddleware(s.ListProfilesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteProfileByUser, ChainMiddleware(s.ProfileByUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteProfile, ChainMiddleware(s.DeleteAccountHandler(), s.APIMiddleware(s.RequireAuth())...))

	s.RegisterRouteHandler("PUT "+RouteProfileExperience, ChainMiddleware(s.AddExperienceHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("DELETE "+RouteProfileExpByID, ChainMiddleware(s.RemoveExperienceHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("PUT "+RouteProfileEducation, ChainMiddleware(s.AddEducationHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("DELETE "+RouteProfileEduByID, ChainMiddleware(s.RemoveEducationHandler(), s.APIMiddleware(s.RequireAuth())...))

	s.RegisterRouteHandler("GET "+RouteProfileGithub, ChainMiddleware(s.GithubReposHandler(), s.APIMiddleware()...))

	// Operations
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// Preflight for every API path
	s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, s.CorsMiddleware))
}
