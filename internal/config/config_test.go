package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-profile-server/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := config.NewFromViper(viper.New())

	require.Equal(t, ":5000", c.GetPort())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, 10*time.Hour, c.GetTokenTTL())
	require.Equal(t, 10, c.GetBcryptCost())
	require.Equal(t, 5, c.GetGithubRepoLimit())
	require.Equal(t, "https://api.github.com", c.GetGithubAPIURL())
	require.Empty(t, c.GetDatabaseURL())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("*"))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	v := viper.New()
	v.AutomaticEnv()
	c := config.NewFromViper(v)

	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "s3cret", c.GetJWTSecret())
	require.Equal(t, time.Hour, c.GetTokenTTL())
	origins := c.GetAllowedOrigins()
	require.True(t, origins.IsAllowedOrigin("https://b.example"))
	require.False(t, origins.IsAllowedOrigin("*"))
	require.Equal(t, "https://a.example, https://b.example", origins.String())
}

func TestValidate(t *testing.T) {
	v := viper.New()
	c := config.NewFromViper(v)
	require.ErrorContains(t, config.Validate(c), "JWT_SECRET")

	v.Set("JWT_SECRET", "x")
	require.NoError(t, config.Validate(c))
}
