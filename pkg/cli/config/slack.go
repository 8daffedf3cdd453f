package config

import (
	"github.com/m-mizutani/tagbump/pkg/domain/interfaces"
	"github.com/m-mizutani/tagbump/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	WebhookURL string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL to announce drafted releases",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("TAGBUMP_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel override",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("TAGBUMP_SLACK_CHANNEL"),
		},
	}
}

// Sink returns the Slack notifier, or nil when no webhook URL is set
func (c *Slack) Sink() interfaces.OutputSink {
	if c.WebhookURL == "" {
		return nil
	}
	return slack.NewNotifier(c.WebhookURL, c.Channel)
}
