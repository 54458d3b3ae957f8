// Package github fetches a user's public repositories from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.github.com"
	DefaultLimit   = 5
	userAgent      = "go-profile-server"
)

// ErrNotFound is returned when GitHub has no repositories to show for a handle.
var ErrNotFound = fmt.Errorf("no github profile found: %w", errors.ErrNotFound)

// Repo is the part of a GitHub repository shown on a profile.
type Repo struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Client struct {
	baseURL string
	limit   int
	http    *http.Client
}

type Option func(*Client)

func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

func WithLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithToken authenticates requests with a personal access token, which raises
// GitHub's rate limit.
func WithToken(tok string) Option {
	return func(c *Client) {
		if tok == "" {
			return
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok})
		transport := &oauth2.Transport{Source: ts, Base: c.http.Transport}
		c.http = &http.Client{Transport: transport, Timeout: c.http.Timeout}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		limit:   DefaultLimit,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepos returns the handle's most recently created repositories, newest first.
// Any non-200 answer from GitHub is reported as ErrNotFound.
func (c *Client) ListRepos(ctx context.Context, handle string) ([]Repo, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.limit))
	q.Set("sort", "created")
	q.Set("direction", "desc")
	endpoint := c.baseURL + "/users/" + url.PathEscape(handle) + "/repos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "[github ListRepos] build request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[github ListRepos] %s: %w", handle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Str("handle", handle).Int("status", resp.StatusCode).Msg("github lookup failed")
		return nil, ErrNotFound
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, errors.Wrapf(err, "[github ListRepos] decode %s", handle)
	}
	return repos, nil
}
