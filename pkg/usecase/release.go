package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/interfaces"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

type releaseUseCase struct {
	repoClient interfaces.RepositoryClient
	sinks      []interfaces.OutputSink
	output     interfaces.OutputSink
	notifiers  []interfaces.OutputSink
	now        func() time.Time
	override   *model.Version
}

// ReleaseOption is a functional option for the release use case
type ReleaseOption func(*releaseUseCase)

// WithSinks adds sinks that must succeed, run in order. Any failure fails
// the release before the output is written.
func WithSinks(sinks ...interfaces.OutputSink) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.sinks = append(uc.sinks, sinks...)
	}
}

// WithOutput sets the sink handing tag, release_name and body to the next
// step. It is the last fatal write of a release.
func WithOutput(output interfaces.OutputSink) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.output = output
	}
}

// WithNotifiers adds sinks called after the output is written. Their
// failures are logged and do not fail the release.
func WithNotifiers(notifiers ...interfaces.OutputSink) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.notifiers = append(uc.notifiers, notifiers...)
	}
}

// WithClock replaces time.Now for the release date
func WithClock(now func() time.Time) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.now = now
	}
}

// WithVersionOverride releases the given version instead of bumping the latest tag
func WithVersionOverride(v model.Version) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.override = &v
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(repoClient interfaces.RepositoryClient, opts ...ReleaseOption) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		repoClient: repoClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Resolve fetches the latest tag and commit concurrently and computes the next release
func (uc *releaseUseCase) Resolve(ctx context.Context, repo model.Repository) (*model.ReleaseDraft, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Resolving next release", "repository", repo.FullName())

	var (
		tags    []*model.Tag
		commits []*model.Commit
	)

	// Plain group: a failed read does not cancel the other one
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		tags, err = uc.repoClient.ListTags(ctx, repo)
		return err
	})
	eg.Go(func() error {
		var err error
		commits, err = uc.repoClient.ListCommits(ctx, repo)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(tags) == 0 {
		return nil, goerr.Wrap(model.ErrEmptyTagList, "cannot determine the current version, push an initial tag such as v0.0.0",
			goerr.V("repository", repo.FullName()),
		)
	}
	if len(commits) == 0 {
		return nil, goerr.Wrap(model.ErrEmptyCommitList, "cannot find the latest commit",
			goerr.V("repository", repo.FullName()),
		)
	}

	latestTag, latestCommit := tags[0], commits[0]
	logger.Info("Latest tag found", "tag", latestTag.Name, "sha", latestTag.SHA)
	logger.Info("Latest commit found", "sha", latestCommit.SHA, "message", latestCommit.Message)

	current, matched := model.LookupTag(latestTag.Name)
	if !matched {
		logger.Warn("Latest tag is not a version, starting from 0.0.0", "tag", latestTag.Name)
	}

	class := model.Classify(latestCommit.Message)

	draft := &model.ReleaseDraft{
		Repository:       repo,
		Current:          current,
		Next:             current.Bump(class.Kind),
		Kind:             class.Kind,
		Summary:          class.Summary,
		Date:             uc.now(),
		BaselineFallback: !matched,
	}

	if uc.override != nil {
		draft.Next = *uc.override
		draft.Kind = model.BumpOverride
		logger.Info("Using version override", "version", draft.Next.Tag())

		if draft.Next.Compare(current) <= 0 {
			logger.Warn("Version override does not advance the latest tag",
				"current", current.Tag(),
				"override", draft.Next.Tag(),
			)
		}
	}

	logger.Info("Resolved next release",
		"bump", draft.Kind,
		"current", draft.Current.Tag(),
		"next", draft.Next.Tag(),
	)

	return draft, nil
}

// Release resolves the next release, renders it, and hands the outputs to
// the sinks, then the output, then the notifiers. The output is written only
// when every earlier step succeeded, and nothing fails after it is written.
func (uc *releaseUseCase) Release(ctx context.Context, repo model.Repository) (*model.ReleaseOutputs, error) {
	logger := ctxlog.From(ctx)

	draft, err := uc.Resolve(ctx, repo)
	if err != nil {
		return nil, err
	}

	outputs, err := draft.Outputs()
	if err != nil {
		return nil, err
	}

	logger.Debug("Release content", "body", outputs.Body)

	for _, sink := range uc.sinks {
		if err := sink.Emit(ctx, outputs); err != nil {
			return nil, goerr.Wrap(err, "failed to emit release outputs",
				goerr.V("repository", repo.FullName()),
				goerr.V("tag", outputs.Tag),
			)
		}
	}

	if uc.output != nil {
		if err := uc.output.Emit(ctx, outputs); err != nil {
			return nil, goerr.Wrap(err, "failed to write release outputs",
				goerr.V("repository", repo.FullName()),
				goerr.V("tag", outputs.Tag),
			)
		}
	}

	logger.Info("Release outputs written",
		"tag", outputs.Tag,
		"release_name", outputs.Name,
		"sinks", len(uc.sinks),
	)

	for _, notifier := range uc.notifiers {
		if err := notifier.Emit(ctx, outputs); err != nil {
			logger.Warn("Failed to send release notification",
				"error", err,
				"tag", outputs.Tag,
			)
		}
	}

	return outputs, nil
}
