package config

import (
	"os"

	"github.com/m-mizutani/tagbump/pkg/domain/interfaces"
	"github.com/m-mizutani/tagbump/pkg/infra/actions"
	"github.com/m-mizutani/tagbump/pkg/infra/console"
	"github.com/urfave/cli/v3"
)

// Output holds where the run command writes its outputs
type Output struct {
	GitHubOutput string
	StepSummary  string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-output",
			Usage:       "GitHub Actions output file; outputs are printed when empty",
			Destination: &c.GitHubOutput,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "step-summary",
			Usage:       "GitHub Actions job summary file",
			Destination: &c.StepSummary,
			Sources:     cli.EnvVars("GITHUB_STEP_SUMMARY"),
		},
	}
}

// Sink returns the runner output file sink in CI, and a console printer otherwise
func (c *Output) Sink() interfaces.OutputSink {
	if c.GitHubOutput == "" {
		return console.New(os.Stdout)
	}

	var opts []actions.Option
	if c.StepSummary != "" {
		opts = append(opts, actions.WithStepSummary(c.StepSummary))
	}
	return actions.New(c.GitHubOutput, opts...)
}
