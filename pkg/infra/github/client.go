package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"github.com/m-mizutani/tagbump/pkg/domain/types"
)

// DefaultPerPage is the page size for list calls. Only the first element
// is used, but a few more help when debugging from logs.
const DefaultPerPage = 10

// Client wraps go-github for the calls tagbump needs
type Client struct {
	githubClient *github.Client
	perPage      int
}

type config struct {
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithBaseURL points the client to another API endpoint, e.g. GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithPerPage sets the page size for tag and commit listing
func WithPerPage(n int) Option {
	return func(c *config) {
		c.perPage = n
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// NewClient creates a GitHub client authenticated with a token
func NewClient(token types.GitHubToken, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is required", goerr.T(model.ErrTagConfiguration))
	}

	cfg := newConfig(opts)
	return newClient(github.NewClient(cfg.httpClient).WithAuthToken(token.String()), cfg)
}

// NewAppClient creates a GitHub client with App installation authentication
func NewAppClient(appID, installationID int64, privateKey []byte, opts ...Option) (*Client, error) {
	cfg := newConfig(opts)

	base := http.DefaultTransport
	if cfg.httpClient != nil && cfg.httpClient.Transport != nil {
		base = cfg.httpClient.Transport
	}

	itr, err := ghinstallation.New(base, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID),
			goerr.V("installation_id", installationID),
			goerr.T(model.ErrTagConfiguration),
		)
	}
	if cfg.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
	}

	return newClient(github.NewClient(&http.Client{Transport: itr}), cfg)
}

func newConfig(opts []Option) *config {
	cfg := &config{perPage: DefaultPerPage}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func newClient(githubClient *github.Client, cfg *config) (*Client, error) {
	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL",
				goerr.V("base_url", cfg.baseURL),
				goerr.T(model.ErrTagConfiguration),
			)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		githubClient.BaseURL = u
	}

	perPage := cfg.perPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	return &Client{
		githubClient: githubClient,
		perPage:      perPage,
	}, nil
}

// ListTags returns the first page of tags, newest first
func (c *Client) ListTags(ctx context.Context, repo model.Repository) ([]*model.Tag, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("Listing tags", "repository", repo.FullName())

	tags, _, err := c.githubClient.Repositories.ListTags(ctx, repo.Owner, repo.Name, &github.ListOptions{
		PerPage: c.perPage,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags",
			goerr.V("repository", repo.FullName()),
			goerr.T(model.ErrTagTransport),
		)
	}

	result := make([]*model.Tag, 0, len(tags))
	for _, t := range tags {
		result = append(result, &model.Tag{
			Name: t.GetName(),
			SHA:  t.GetCommit().GetSHA(),
		})
	}

	logger.Debug("Listed tags", "repository", repo.FullName(), "count", len(result))
	return result, nil
}

// ListCommits returns the first page of commits on the default branch, newest first
func (c *Client) ListCommits(ctx context.Context, repo model.Repository) ([]*model.Commit, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("Listing commits", "repository", repo.FullName())

	commits, _, err := c.githubClient.Repositories.ListCommits(ctx, repo.Owner, repo.Name, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: c.perPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits",
			goerr.V("repository", repo.FullName()),
			goerr.T(model.ErrTagTransport),
		)
	}

	result := make([]*model.Commit, 0, len(commits))
	for _, rc := range commits {
		result = append(result, &model.Commit{
			SHA:     rc.GetSHA(),
			Message: rc.GetCommit().GetMessage(),
		})
	}

	logger.Debug("Listed commits", "repository", repo.FullName(), "count", len(result))
	return result, nil
}

// CreateDraftRelease creates an unpublished release. The tag is created by
// GitHub when the release gets published.
func (c *Client) CreateDraftRelease(ctx context.Context, outputs *model.ReleaseOutputs) error {
	repo := outputs.Repository
	release, _, err := c.githubClient.Repositories.CreateRelease(ctx, repo.Owner, repo.Name, &github.RepositoryRelease{
		TagName: github.Ptr(outputs.Tag),
		Name:    github.Ptr(outputs.Name),
		Body:    github.Ptr(outputs.Body),
		Draft:   github.Ptr(true),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create draft release",
			goerr.V("repository", repo.FullName()),
			goerr.V("tag", outputs.Tag),
			goerr.T(model.ErrTagTransport),
		)
	}

	ctxlog.From(ctx).Info("Created draft release",
		"repository", repo.FullName(),
		"tag", outputs.Tag,
		"url", release.GetHTMLURL(),
	)
	return nil
}
