package github

import (
	"context"

	"github.com/m-mizutani/tagbump/pkg/domain/interfaces"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// DraftPublisher is an output sink that turns the outputs into a draft release
type DraftPublisher struct {
	client interfaces.ReleaseClient
}

// NewDraftPublisher creates a DraftPublisher
func NewDraftPublisher(client interfaces.ReleaseClient) *DraftPublisher {
	return &DraftPublisher{client: client}
}

// Emit creates the draft release
func (p *DraftPublisher) Emit(ctx context.Context, outputs *model.ReleaseOutputs) error {
	return p.client.CreateDraftRelease(ctx, outputs)
}
