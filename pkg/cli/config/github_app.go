package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	githubinfra "github.com/m-mizutani/tagbump/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHubApp holds GitHub App credentials for the webhook server
type GitHubApp struct {
	AppID          int64
	InstallationID int64
	PrivateKey     string
	PrivateKeyFile string
	APIURL         string
}

// Flags returns CLI flags for GitHub App configuration
func (c *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Required:    true,
			Destination: &c.AppID,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Required:    true,
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM content)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-private-key-file",
			Usage:       "Path to the GitHub App private key",
			Destination: &c.PrivateKeyFile,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_PRIVATE_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_API_URL"),
		},
	}
}

// NewClient builds an App-authenticated GitHub client
func (c *GitHubApp) NewClient() (*githubinfra.Client, error) {
	key := []byte(c.PrivateKey)
	if len(key) == 0 && c.PrivateKeyFile != "" {
		data, err := os.ReadFile(c.PrivateKeyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read GitHub App private key",
				goerr.V("path", c.PrivateKeyFile),
				goerr.T(model.ErrTagConfiguration),
			)
		}
		key = data
	}
	if len(key) == 0 {
		return nil, goerr.New("GitHub App private key is required", goerr.T(model.ErrTagConfiguration))
	}

	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}

	return githubinfra.NewAppClient(c.AppID, c.InstallationID, key, opts...)
}
