package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	githubAPIURLVar    = "GITHUB_API_URL"
	githubTokenVar     = "GITHUB_TOKEN"
	githubRepoLimitVar = "GITHUB_REPO_LIMIT"
	githubTimeoutVar   = "GITHUB_TIMEOUT"
)

type GithubConfig interface {
	GetGithubAPIURL() string
	GetGithubToken() string
	GetGithubRepoLimit() int
	GetGithubTimeout() time.Duration
}

type Github struct {
	v *viper.Viper
}

var _ GithubConfig = Github{}

func (g Github) GetGithubAPIURL() string {
	return g.v.GetString(githubAPIURLVar)
}

func (g Github) GetGithubToken() string {
	return g.v.GetString(githubTokenVar)
}

func (g Github) GetGithubRepoLimit() int {
	return g.v.GetInt(githubRepoLimitVar)
}

func (g Github) GetGithubTimeout() time.Duration {
	return g.v.GetDuration(githubTimeoutVar)
}
