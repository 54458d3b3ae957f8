package fakeprofilerepo_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/internal/utils"
	"github.com/jrsteele09/go-profile-server/profiles"
	fakeprofilerepo "github.com/jrsteele09/go-profile-server/profiles/repofake"
	"github.com/stretchr/testify/require"
)

func TestFakeProfileRepo(t *testing.T) {
	ctx := context.Background()
	repo := fakeprofilerepo.NewFakeProfileRepo()

	_, err := repo.GetByUser(ctx, "u1")
	require.ErrorIs(t, err, errors.ErrProfileNotFound)

	created, err := repo.Upsert(ctx, "u1", profiles.Update{Status: utils.Ptr("Dev"), Skills: []string{"Go"}})
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	t.Run("returned values are copies", func(t *testing.T) {
		created.Skills[0] = "changed"
		got, err := repo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, []string{"Go"}, got.Skills)
	})

	t.Run("merge keeps created date", func(t *testing.T) {
		merged, err := repo.Upsert(ctx, "u1", profiles.Update{Bio: utils.Ptr("hi")})
		require.NoError(t, err)
		require.Equal(t, created.CreatedAt, merged.CreatedAt)
		require.Equal(t, "Dev", *merged.Status)
	})

	t.Run("save requires existing profile", func(t *testing.T) {
		require.ErrorIs(t, repo.Save(ctx, &profiles.Profile{UserID: "u2"}), errors.ErrProfileNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "u1"))
		require.ErrorIs(t, repo.Delete(ctx, "u1"), errors.ErrNotFound)
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
