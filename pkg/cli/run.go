package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/cli/config"
	githubinfra "github.com/m-mizutani/tagbump/pkg/infra/github"
	"github.com/m-mizutani/tagbump/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		githubCfg  config.GitHub
		outputCfg  config.Output
		releaseCfg config.Release
		slackCfg   config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Resolve the next release and write tag, release_name and body",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			creds, local, err := githubCfg.Credentials()
			if err != nil {
				return err
			}
			env := "production"
			if local {
				env = "local"
			}
			logger.Info("Active environment",
				slog.String("env", env),
				slog.String("repository", creds.Repository.FullName()),
				slog.Any("token", creds.Token),
			)

			var clientOpts []githubinfra.Option
			if githubCfg.APIURL != "" {
				clientOpts = append(clientOpts, githubinfra.WithBaseURL(githubCfg.APIURL))
			}
			client, err := githubinfra.NewClient(creds.Token, clientOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			opts := []usecase.ReleaseOption{usecase.WithOutput(outputCfg.Sink())}
			if notifier := slackCfg.Sink(); notifier != nil {
				opts = append(opts, usecase.WithNotifiers(notifier))
			}
			override, err := releaseCfg.Override()
			if err != nil {
				return err
			}
			if override != nil {
				opts = append(opts, usecase.WithVersionOverride(*override))
			}

			outputs, err := usecase.NewRelease(client, opts...).Release(ctx, creds.Repository)
			if err != nil {
				return err
			}

			logger.Info("Release resolved",
				slog.String("tag", outputs.Tag),
				slog.String("release_name", outputs.Name),
			)
			return nil
		},
	}
}
