package interfaces

import (
	"context"

	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// RepositoryClient is the read side of the GitHub API used to resolve a release
type RepositoryClient interface {
	// ListTags returns tags of the repository, newest first
	ListTags(ctx context.Context, repo model.Repository) ([]*model.Tag, error)

	// ListCommits returns commits on the default branch, newest first
	ListCommits(ctx context.Context, repo model.Repository) ([]*model.Commit, error)
}

// ReleaseClient creates releases on GitHub
type ReleaseClient interface {
	// CreateDraftRelease creates an unpublished release from the outputs
	CreateDraftRelease(ctx context.Context, outputs *model.ReleaseOutputs) error
}
