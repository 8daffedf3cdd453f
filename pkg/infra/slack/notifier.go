package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts drafted releases to a Slack incoming webhook
type Notifier struct {
	webhookURL string
	channel    string
}

// NewNotifier creates a Notifier. channel may be empty to use the webhook's default.
func NewNotifier(webhookURL, channel string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		channel:    channel,
	}
}

// Emit posts the release name and body
func (x *Notifier) Emit(ctx context.Context, outputs *model.ReleaseOutputs) error {
	msg := &slack.WebhookMessage{
		Channel: x.channel,
		Text:    fmt.Sprintf("*%s* drafted for `%s`\n%s", outputs.Name, outputs.Repository.FullName(), outputs.Body),
	}

	if err := slack.PostWebhookContext(ctx, x.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post release to Slack",
			goerr.V("repository", outputs.Repository.FullName()),
			goerr.V("tag", outputs.Tag),
		)
	}

	ctxlog.From(ctx).Info("Posted release to Slack", "tag", outputs.Tag)
	return nil
}
