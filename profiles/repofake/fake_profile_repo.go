package fakeprofilerepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/profiles"
)

var _ profiles.Repo = (*FakeProfileRepo)(nil)

// FakeProfileRepo is an in-memory profiles.Repo. Every value handed in or out is
// copied so callers never share state with the store.
type FakeProfileRepo struct {
	profiles map[string]*profiles.Profile // user id to profile
	lock     sync.RWMutex
	now      func() time.Time

	// Err, when set, is returned from every call to simulate an unavailable store.
	Err error
}

func NewFakeProfileRepo() *FakeProfileRepo {
	return &FakeProfileRepo{
		profiles: make(map[string]*profiles.Profile),
		now:      time.Now,
	}
}

func (r *FakeProfileRepo) GetByUser(_ context.Context, userID string) (*profiles.Profile, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.Err != nil {
		return nil, errors.StoreError("fakeprofilerepo.GetByUser", r.Err)
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, errors.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *FakeProfileRepo) Upsert(_ context.Context, userID string, u profiles.Update) (*profiles.Profile, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.Err != nil {
		return nil, errors.StoreError("fakeprofilerepo.Upsert", r.Err)
	}
	p, ok := r.profiles[userID]
	if ok {
		u.ApplyTo(p)
	} else {
		p = u.NewProfile(userID)
		p.CreatedAt = r.now().UTC()
		r.profiles[userID] = p
	}
	return p.Clone(), nil
}

func (r *FakeProfileRepo) Save(_ context.Context, p *profiles.Profile) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.Err != nil {
		return errors.StoreError("fakeprofilerepo.Save", r.Err)
	}
	if _, ok := r.profiles[p.UserID]; !ok {
		return errors.ErrProfileNotFound
	}
	r.profiles[p.UserID] = p.Clone()
	return nil
}

func (r *FakeProfileRepo) Delete(_ context.Context, userID string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.Err != nil {
		return errors.StoreError("fakeprofilerepo.Delete", r.Err)
	}
	if _, ok := r.profiles[userID]; !ok {
		return errors.ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}

func (r *FakeProfileRepo) List(_ context.Context) ([]*profiles.Profile, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.Err != nil {
		return nil, errors.StoreError("fakeprofilerepo.List", r.Err)
	}
	out := make([]*profiles.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
