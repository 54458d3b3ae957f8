package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-profile-server/github"
	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestClient_ListRepos(t *testing.T) {
	var gotQuery, gotAuth, gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path != "/users/octocat/repos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"name":"hello","full_name":"octocat/hello","html_url":"https://github.com/octocat/hello","stargazers_count":3,"forks_count":1,"created_at":"2020-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	t.Run("lists newest repos", func(t *testing.T) {
		c := github.NewClient(github.WithBaseURL(srv.URL), github.WithLimit(3), github.WithToken("tok"))
		repos, err := c.ListRepos(context.Background(), "octocat")
		require.NoError(t, err)
		require.Len(t, repos, 1)
		require.Equal(t, "octocat/hello", repos[0].FullName)
		require.Equal(t, 3, repos[0].Stars)

		require.Equal(t, "/users/octocat/repos", gotPath)
		require.Equal(t, "direction=desc&per_page=3&sort=created", gotQuery)
		require.Equal(t, "Bearer tok", gotAuth)
		require.NotEmpty(t, gotUA)
	})

	t.Run("no token sends no authorization", func(t *testing.T) {
		c := github.NewClient(github.WithBaseURL(srv.URL))
		_, err := c.ListRepos(context.Background(), "octocat")
		require.NoError(t, err)
		require.Empty(t, gotAuth)
		require.Contains(t, gotQuery, "per_page=5")
	})

	t.Run("unknown handle", func(t *testing.T) {
		c := github.NewClient(github.WithBaseURL(srv.URL))
		_, err := c.ListRepos(context.Background(), "nobody")
		require.ErrorIs(t, err, github.ErrNotFound)
		require.ErrorIs(t, err, errors.ErrNotFound)
	})
}
