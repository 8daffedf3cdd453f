package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"github.com/m-mizutani/tagbump/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// GitHub holds repository access configuration for the run command
type GitHub struct {
	Token       string
	Repository  string
	Owner       string
	Repo        string
	LocalConfig string
	APIURL      string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token with read access to tags and commits",
			Destination: &c.Token,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_TOKEN", "INPUT_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Target repository as owner/name",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("TAGBUMP_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner, overrides --repository",
			Destination: &c.Owner,
			Sources:     cli.EnvVars("TAGBUMP_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name, overrides --repository",
			Destination: &c.Repo,
			Sources:     cli.EnvVars("TAGBUMP_REPO"),
		},
		&cli.StringFlag{
			Name:        "local-config",
			Usage:       "Credentials file used when no token is given (key=value or .toml)",
			Value:       types.DefaultLocalConfig,
			Destination: &c.LocalConfig,
			Sources:     cli.EnvVars("TAGBUMP_LOCAL_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_API_URL", "GITHUB_API_URL"),
		},
	}
}

// Credentials resolves the repository and token. A token from the CI
// environment wins; otherwise the local config file is read. Failing both is
// a configuration error.
func (c *GitHub) Credentials() (*model.Credentials, bool, error) {
	if c.Token != "" {
		creds := &model.Credentials{Token: types.GitHubToken(c.Token)}

		if c.Repository != "" {
			repo, err := model.ParseRepository(c.Repository)
			if err != nil {
				return nil, false, err
			}
			creds.Repository = repo
		}
		if c.Owner != "" {
			creds.Repository.Owner = c.Owner
		}
		if c.Repo != "" {
			creds.Repository.Name = c.Repo
		}

		if err := creds.Validate(); err != nil {
			return nil, false, err
		}
		return creds, false, nil
	}

	if c.LocalConfig != "" {
		if _, err := os.Stat(c.LocalConfig); err == nil {
			creds, err := LoadLocal(c.LocalConfig)
			if err != nil {
				return nil, false, err
			}
			return creds, true, nil
		}
	}

	return nil, false, goerr.New("could not determine environment, set a GitHub token or create a local config file",
		goerr.V("local_config", c.LocalConfig),
		goerr.T(model.ErrTagConfiguration),
	)
}
