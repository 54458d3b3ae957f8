package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/profiles"
)

var _ profiles.Repo = (*ProfilesRepo)(nil)

// ProfilesRepo keeps each profile as one JSONB document keyed by its owner.
type ProfilesRepo struct {
	db DB
}

func NewProfilesRepo(db DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) GetByUser(ctx context.Context, userID string) (*profiles.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id::text, doc, created_at FROM profiles WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, classify("profiles.GetByUser", err, errors.ErrProfileNotFound)
	}
	return p, nil
}

// Upsert merges u into the stored profile, or creates it, inside one transaction.
// The existing row is locked so concurrent upserts for one user serialize.
func (r *ProfilesRepo) Upsert(ctx context.Context, userID string, u profiles.Update) (*profiles.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errors.StoreError("profiles.Upsert begin", err)
	}

	p, err := upsertTx(ctx, tx, userID, u)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.StoreError("profiles.Upsert commit", err)
	}
	return p, nil
}

func upsertTx(ctx context.Context, tx pgx.Tx, userID string, u profiles.Update) (*profiles.Profile, error) {
	row := tx.QueryRow(ctx, `SELECT user_id::text, doc, created_at FROM profiles WHERE user_id = $1 FOR UPDATE`, userID)
	p, err := scanProfile(row)
	switch {
	case err == nil:
		u.ApplyTo(p)
		doc, err := json.Marshal(p)
		if err != nil {
			return nil, errors.Wrapf(err, "[profiles.Upsert] encode")
		}
		if _, err := tx.Exec(ctx, `UPDATE profiles SET doc = $2 WHERE user_id = $1`, userID, doc); err != nil {
			return nil, classify("profiles.Upsert update", err, errors.ErrProfileNotFound)
		}
		return p, nil

	case errors.Is(err, pgx.ErrNoRows):
		p = u.NewProfile(userID)
		doc, err := json.Marshal(p)
		if err != nil {
			return nil, errors.Wrapf(err, "[profiles.Upsert] encode")
		}
		err = tx.QueryRow(ctx, `INSERT INTO profiles (user_id, doc) VALUES ($1, $2) RETURNING created_at`, userID, doc).
			Scan(&p.CreatedAt)
		if err != nil {
			return nil, classify("profiles.Upsert insert", err, errors.ErrUserNotFound)
		}
		return p, nil

	default:
		return nil, classify("profiles.Upsert select", err, errors.ErrProfileNotFound)
	}
}

// Save replaces the whole stored document for p's owner.
func (r *ProfilesRepo) Save(ctx context.Context, p *profiles.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return errors.Wrapf(err, "[profiles.Save] encode")
	}
	tag, err := r.db.Exec(ctx, `UPDATE profiles SET doc = $2 WHERE user_id = $1`, p.UserID, doc)
	if err != nil {
		return classify("profiles.Save", err, errors.ErrProfileNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrProfileNotFound
	}
	return nil
}

func (r *ProfilesRepo) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return classify("profiles.Delete", err, errors.ErrProfileNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrProfileNotFound
	}
	return nil
}

func (r *ProfilesRepo) List(ctx context.Context) ([]*profiles.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id::text, doc, created_at FROM profiles ORDER BY created_at, user_id`)
	if err != nil {
		return nil, errors.StoreError("profiles.List", err)
	}
	defer rows.Close()

	list := make([]*profiles.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, errors.StoreError("profiles.List", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StoreError("profiles.List", err)
	}
	return list, nil
}

// scanProfile decodes a row of (user_id, doc, created_at). The columns win over
// whatever the document holds for owner and creation time.
func scanProfile(row pgx.Row) (*profiles.Profile, error) {
	var (
		userID    string
		doc       []byte
		createdAt time.Time
	)
	if err := row.Scan(&userID, &doc, &createdAt); err != nil {
		return nil, err
	}
	var p profiles.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, errors.Wrapf(err, "decode profile %s", userID)
	}
	p.UserID = userID
	p.CreatedAt = createdAt
	if p.Experience == nil {
		p.Experience = []profiles.Experience{}
	}
	if p.Education == nil {
		p.Education = []profiles.Education{}
	}
	return &p, nil
}
