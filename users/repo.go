package users

import "context"

// Repo stores principals. Implementations return errors.ErrUserNotFound for missing
// users, errors.ErrUserExists for a duplicate email, and wrap every other failure
// in errors.ErrStoreUnavailable.
type Repo interface {
	Insert(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
