package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/tagbump/pkg/domain/interfaces"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"github.com/m-mizutani/tagbump/pkg/utils/async"
)

type webhookUseCase struct {
	releaseUC interfaces.ReleaseUseCase
	dispatch  func(ctx context.Context, handler func(ctx context.Context) error)
}

// WebhookOption is a functional option for the webhook use case
type WebhookOption func(*webhookUseCase)

// WithDispatcher replaces async.Dispatch, mainly for tests
func WithDispatcher(dispatch func(ctx context.Context, handler func(ctx context.Context) error)) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.dispatch = dispatch
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(releaseUC interfaces.ReleaseUseCase, opts ...WebhookOption) interfaces.WebhookUseCase {
	uc := &webhookUseCase{
		releaseUC: releaseUC,
		dispatch:  async.Dispatch,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent starts a release run in the background for pushes to the
// default branch. Other events are only logged.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"repository", event.Repository.FullName(),
		"ref", event.Ref,
		"sender", event.Sender,
		"release_trigger", event.IsReleaseTrigger(),
	)

	if !event.IsReleaseTrigger() {
		return nil
	}

	repo := event.Repository
	uc.dispatch(ctx, func(ctx context.Context) error {
		_, err := uc.releaseUC.Release(ctx, repo)
		return err
	})

	return nil
}
