package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-profile-server/auth"
	"github.com/jrsteele09/go-profile-server/github"
	"github.com/jrsteele09/go-profile-server/internal/config"
	"github.com/jrsteele09/go-profile-server/profiles"
	"github.com/jrsteele09/go-profile-server/token"
	"github.com/jrsteele09/go-profile-server/users"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

// RepoLister fetches a GitHub user's public repositories.
type RepoLister interface {
	ListRepos(ctx context.Context, handle string) ([]github.Repo, error)
}

// Repos holds the stores and outbound clients the server depends on.
type Repos struct {
	Users    users.Repo
	Profiles profiles.Repo
	Github   RepoLister
	// Ping reports store health for /healthz. Nil means always healthy.
	Ping func(ctx context.Context) error
}

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	auth     *auth.Service
	profiles *profiles.Service
	github   RepoLister
	ping     func(ctx context.Context) error
	registry *prometheus.Registry
	metrics  *httpMetrics
}

func New(config config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil || repos.Profiles == nil {
		return nil, fmt.Errorf("[Server New] user and profile repos are required")
	}

	signer, err := token.NewHMACSigner(config.GetJWTSecret())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create token signer: %w", err)
	}
	tokens := token.NewManager(signer, config.GetTokenTTL())

	authService, err := auth.NewService(repos.Users, tokens, auth.WithHasher(users.NewBcryptHasher(config.GetBcryptCost())))
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create auth service: %w", err)
	}

	gh := repos.Github
	if gh == nil {
		gh = github.NewClient(
			github.WithBaseURL(config.GetGithubAPIURL()),
			github.WithLimit(config.GetGithubRepoLimit()),
			github.WithTimeout(config.GetGithubTimeout()),
			github.WithToken(config.GetGithubToken()),
		)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		env:      config.GetEnv(),
		mux:      http.NewServeMux(),
		config:   config,
		auth:     authService,
		profiles: profiles.NewService(repos.Profiles, repos.Users),
		github:   gh,
		ping:     repos.Ping,
		registry: registry,
		metrics:  newHTTPMetrics(registry),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	color, ok := methodColors[method]
	if !ok {
		color = Gray
	}
	log.Info().Msgf("[%s] %s", color+paddedMethod+ResetColor, path)
}
