package profiles

import "context"

// Repo stores one profile document per user. Implementations return
// errors.ErrProfileNotFound for a missing profile and wrap every other failure in
// errors.ErrStoreUnavailable. Each call is atomic for the single document it touches.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (*Profile, error)
	// Upsert merges u into the user's profile, creating it from u when absent.
	Upsert(ctx context.Context, userID string, u Update) (*Profile, error)
	// Save replaces the stored profile with p. The profile must exist.
	Save(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context) ([]*Profile, error)
}
