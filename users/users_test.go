package users_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/go-profile-server/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := users.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	t.Run("matching password", func(t *testing.T) {
		require.True(t, h.Verify("secret1", hash))
	})

	t.Run("different password", func(t *testing.T) {
		require.False(t, h.Verify("secret2", hash))
	})

	t.Run("password too long", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("x", 73))
		require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
		require.ErrorContains(t, err, "[users Hash]")
	})

	t.Run("salt differs per call", func(t *testing.T) {
		other, err := h.Hash("secret1")
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
		require.True(t, h.Verify("secret1", other))
	})

	t.Run("malformed hash never matches", func(t *testing.T) {
		require.False(t, h.Verify("secret1", ""))
		require.False(t, h.Verify("secret1", "not-a-bcrypt-hash"))
		require.False(t, h.Verify("secret1", hash[:len(hash)-4]))
	})

	t.Run("password over bcrypt limit fails to hash", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("x", 73))
		require.Error(t, err)
	})
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	hash, err := users.NewBcryptHasher(1).Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, users.DefaultCost, cost)
}

func TestAvatarURL(t *testing.T) {
	got := users.AvatarURL("a@x.com")
	require.True(t, strings.HasPrefix(got, "https://www.gravatar.com/avatar/"))
	require.Contains(t, got, "s=200")
	require.Contains(t, got, "r=pg")
	require.Contains(t, got, "d=mm")
	require.Equal(t, got, users.AvatarURL("  A@X.com "))
	require.NotEqual(t, got, users.AvatarURL("b@x.com"))
}

func TestUserSummary(t *testing.T) {
	var nilUser *users.User
	require.Nil(t, nilUser.Summary())

	u := &users.User{ID: "1", Name: "A", Avatar: "img", PasswordHash: "h"}
	require.Equal(t, &users.Summary{ID: "1", Name: "A", Avatar: "img"}, u.Summary())
}
