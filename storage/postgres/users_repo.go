package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/users"
)

const userColumns = `id::text, name, email, avatar, password_hash, created_at`

var _ users.Repo = (*UsersRepo)(nil)

type UsersRepo struct {
	db DB
}

func NewUsersRepo(db DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// Insert stores u and fills in its id and creation time.
func (r *UsersRepo) Insert(ctx context.Context, u *users.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, avatar, password_hash) VALUES ($1, $2, $3, $4) RETURNING id::text, created_at`,
		u.Name, u.Email, u.Avatar, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		err = classify("users.Insert", err, errors.ErrUserNotFound)
		if errors.Is(err, errors.ErrConflict) {
			return errors.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return classify("users.Delete", err, errors.ErrUserNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, classify("users.GetByEmail", err, errors.ErrUserNotFound)
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, classify("users.GetByID", err, errors.ErrUserNotFound)
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]*users.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.StoreError("users.List", err)
	}
	defer rows.Close()

	list := make([]*users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.StoreError("users.List", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StoreError("users.List", err)
	}
	return list, nil
}

func scanUser(row pgx.Row) (*users.User, error) {
	var u users.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
