package profiles

import (
	"context"

	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/users"
	"github.com/rs/zerolog/log"
)

// Service implements the profile operations for an already authenticated user.
type Service struct {
	profiles Repo
	users    users.Repo
	newID    func() string
}

type Option func(*Service)

// WithIDGenerator overrides how sub-entry ids are produced.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func NewService(profiles Repo, userRepo users.Repo, opts ...Option) *Service {
	s := &Service{
		profiles: profiles,
		users:    userRepo,
		newID:    newEntryID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert creates the user's profile from in, or merges in into the existing one.
// Fields absent from in never overwrite stored values. A missing owner yields
// ErrUserNotFound.
func (s *Service) Upsert(ctx context.Context, userID string, in Input) (*Profile, error) {
	// a token can outlive its user; never create a profile without an owner
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, errors.Wrapf(err, "[profiles Upsert] owner %s", userID)
	}
	p, err := s.profiles.Upsert(ctx, userID, BuildUpdate(in))
	if err != nil {
		return nil, errors.Wrapf(err, "[profiles Upsert] user %s", userID)
	}
	return p, nil
}

// Me returns the caller's profile with the owner's name and avatar.
func (s *Service) Me(ctx context.Context, userID string) (*WithUser, error) {
	return s.ByUser(ctx, userID)
}

// ByUser returns one user's profile with the owner's name and avatar.
func (s *Service) ByUser(ctx context.Context, userID string) (*WithUser, error) {
	p, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "[profiles ByUser] user %s", userID)
	}
	return s.withUser(ctx, p)
}

// List returns every profile with its owner's name and avatar.
func (s *Service) List(ctx context.Context) ([]*WithUser, error) {
	ps, err := s.profiles.List(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "[profiles List]")
	}
	out := make([]*WithUser, 0, len(ps))
	for _, p := range ps {
		wu, err := s.withUser(ctx, p)
		if err != nil {
			return nil, errors.Wrapf(err, "[profiles List]")
		}
		out = append(out, wu)
	}
	return out, nil
}

// DeleteAccount removes the profile and then the user. The two deletes are
// independent; if the second fails the first is not rolled back.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profiles.Delete(ctx, userID); err != nil && !errors.Is(err, errors.ErrProfileNotFound) {
		return errors.Wrapf(err, "[profiles DeleteAccount] profile %s", userID)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return errors.Wrapf(err, "[profiles DeleteAccount] user %s", userID)
	}
	return nil
}

// AddExperience inserts a new work history entry at the front of the list.
func (s *Service) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*Profile, error) {
	return s.edit(ctx, "AddExperience", userID, func(p *Profile) error {
		p.Experience = prepend(p.Experience, in.entry(s.newID))
		return nil
	})
}

// RemoveExperience deletes the work history entry with the given id.
func (s *Service) RemoveExperience(ctx context.Context, userID, entryID string) (*Profile, error) {
	return s.edit(ctx, "RemoveExperience", userID, func(p *Profile) error {
		seq, ok := removeByID(p.Experience, entryID)
		if !ok {
			return errors.Wrapf(errors.ErrEntryNotFound, "experience %s", entryID)
		}
		p.Experience = seq
		return nil
	})
}

// AddEducation inserts a new education history entry at the front of the list.
func (s *Service) AddEducation(ctx context.Context, userID string, in EducationInput) (*Profile, error) {
	return s.edit(ctx, "AddEducation", userID, func(p *Profile) error {
		p.Education = prepend(p.Education, in.entry(s.newID))
		return nil
	})
}

// RemoveEducation deletes the education history entry with the given id.
func (s *Service) RemoveEducation(ctx context.Context, userID, entryID string) (*Profile, error) {
	return s.edit(ctx, "RemoveEducation", userID, func(p *Profile) error {
		seq, ok := removeByID(p.Education, entryID)
		if !ok {
			return errors.Wrapf(errors.ErrEntryNotFound, "education %s", entryID)
		}
		p.Education = seq
		return nil
	})
}

// edit loads the profile, applies mutate and saves the whole document.
// Concurrent edits of the same profile are last write wins.
func (s *Service) edit(ctx context.Context, op, userID string, mutate func(*Profile) error) (*Profile, error) {
	p, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "[profiles %s] user %s", op, userID)
	}
	if err := mutate(p); err != nil {
		return nil, errors.Wrapf(err, "[profiles %s] user %s", op, userID)
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, errors.Wrapf(err, "[profiles %s] user %s", op, userID)
	}
	return p, nil
}

func (s *Service) withUser(ctx context.Context, p *Profile) (*WithUser, error) {
	u, err := s.users.GetByID(ctx, p.UserID)
	switch {
	case err == nil:
		return &WithUser{Profile: p, User: u.Summary()}, nil
	case errors.Is(err, errors.ErrNotFound):
		log.Warn().Str("user_id", p.UserID).Msg("profile owner missing")
		return &WithUser{Profile: p, User: &users.Summary{ID: p.UserID}}, nil
	default:
		return nil, err
	}
}
