package interfaces

import (
	"context"

	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// ReleaseUseCase computes the next release of a repository
type ReleaseUseCase interface {
	// Resolve reads the latest tag and commit and computes the next release
	Resolve(ctx context.Context, repo model.Repository) (*model.ReleaseDraft, error)

	// Release resolves the next release and writes its outputs to every sink
	Release(ctx context.Context, repo model.Repository) (*model.ReleaseOutputs, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}
