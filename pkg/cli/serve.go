package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/cli/config"
	controller "github.com/m-mizutani/tagbump/pkg/controller/http"
	githubinfra "github.com/m-mizutani/tagbump/pkg/infra/github"
	"github.com/m-mizutani/tagbump/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		appCfg    config.GitHubApp
		slackCfg  config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server resolving releases on pushes to the default branch",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tagbump server",
				slog.String("addr", serverCfg.Addr),
				slog.Int64("app_id", appCfg.AppID),
				slog.Bool("create_draft", serverCfg.CreateDraft),
			)

			client, err := appCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub App client")
			}

			var opts []usecase.ReleaseOption
			if serverCfg.CreateDraft {
				opts = append(opts, usecase.WithSinks(githubinfra.NewDraftPublisher(client)))
			}
			if notifier := slackCfg.Sink(); notifier != nil {
				opts = append(opts, usecase.WithNotifiers(notifier))
			}
			if len(opts) == 0 {
				logger.Warn("No release sink configured, resolved releases are only logged")
			}

			releaseUC := usecase.NewRelease(client, opts...)
			webhookUC := usecase.NewWebhook(releaseUC)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(serverCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
