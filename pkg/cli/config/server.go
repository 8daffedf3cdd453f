package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr          string
	WebhookSecret string
	CreateDraft   bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("TAGBUMP_ADDR"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("TAGBUMP_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.BoolFlag{
			Name:        "create-draft",
			Usage:       "Create a draft GitHub release for every resolved version",
			Destination: &c.CreateDraft,
			Sources:     cli.EnvVars("TAGBUMP_CREATE_DRAFT"),
		},
	}
}
