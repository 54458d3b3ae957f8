// Package auth registers and logs in users and resolves them from session tokens.
package auth

import (
	"context"

	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/token"
	"github.com/jrsteele09/go-profile-server/users"
	"github.com/rs/zerolog/log"
)

// Service handles credential checks and token issuance.
type Service struct {
	users     users.Repo
	hasher    users.Hasher
	tokens    *token.Manager
	validator *Validator
}

type ServiceOption func(*Service)

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h users.Hasher) ServiceOption {
	return func(s *Service) {
		s.hasher = h
	}
}

// NewService creates the auth service. The user repo and token manager are required.
func NewService(userRepo users.Repo, tokens *token.Manager, options ...ServiceOption) (*Service, error) {
	if userRepo == nil {
		return nil, errors.New("[auth NewService] users repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[auth NewService] token manager is required")
	}

	s := &Service{
		users:     userRepo,
		hasher:    users.NewBcryptHasher(users.DefaultCost),
		tokens:    tokens,
		validator: NewValidator(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Validator returns the request validator used by the service.
func (s *Service) Validator() *Validator {
	return s.validator
}

// Register creates a user and returns a token for it. Emails are matched exactly;
// an existing email yields ErrUserExists.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	_, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return "", errors.Wrapf(errors.ErrUserExists, "[auth Register] %s", req.Email)
	case !errors.Is(err, errors.ErrNotFound):
		return "", errors.Wrapf(err, "[auth Register] lookup %s", req.Email)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", errors.Wrapf(err, "[auth Register] hash")
	}

	u := &users.User{
		Name:         req.Name,
		Email:        req.Email,
		Avatar:       users.AvatarURL(req.Email),
		PasswordHash: hash,
	}
	// the store re-checks uniqueness, so a racing register still gets ErrUserExists
	if err := s.users.Insert(ctx, u); err != nil {
		return "", errors.Wrapf(err, "[auth Register] insert %s", req.Email)
	}

	log.Info().Str("user_id", u.ID).Msg("user registered")
	return s.issue(u.ID)
}

// Login checks the credentials and returns a fresh token. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return "", errors.ErrInvalidCredentials
		}
		return "", errors.Wrapf(err, "[auth Login] lookup")
	}
	if !s.hasher.Verify(req.Password, u.PasswordHash) {
		return "", errors.ErrInvalidCredentials
	}
	return s.issue(u.ID)
}

// Authenticate resolves a raw token to the user id it was issued for.
func (s *Service) Authenticate(tok string) (string, error) {
	if tok == "" {
		return "", errors.ErrNoToken
	}
	return s.tokens.Verify(tok)
}

// CurrentUser returns the user for an id resolved from a token.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*users.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "[auth CurrentUser] %s", userID)
	}
	return u, nil
}

// ListUsers returns every registered user, oldest first.
func (s *Service) ListUsers(ctx context.Context) ([]*users.User, error) {
	us, err := s.users.List(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "[auth ListUsers]")
	}
	return us, nil
}

func (s *Service) issue(userID string) (string, error) {
	tok, err := s.tokens.Issue(userID)
	if err != nil {
		return "", errors.Wrapf(err, "[auth] issue token")
	}
	return tok, nil
}
