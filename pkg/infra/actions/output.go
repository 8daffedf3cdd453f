// Package actions writes release outputs through the GitHub Actions runner
// files ($GITHUB_OUTPUT and $GITHUB_STEP_SUMMARY).
package actions

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// Output appends step outputs to the runner's output file
type Output struct {
	outputPath  string
	summaryPath string
	delimiter   func() string
}

// Option is a functional option for Output
type Option func(*Output)

// WithStepSummary also appends the release body to the job summary file
func WithStepSummary(path string) Option {
	return func(x *Output) {
		x.summaryPath = path
	}
}

// WithDelimiter replaces the heredoc delimiter generator
func WithDelimiter(f func() string) Option {
	return func(x *Output) {
		x.delimiter = f
	}
}

// New creates an Output writing to outputPath, usually $GITHUB_OUTPUT
func New(outputPath string, opts ...Option) *Output {
	x := &Output{
		outputPath: outputPath,
		delimiter: func() string {
			return "ghadelimiter_" + uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Emit writes tag, release_name and body in a single append, then the
// optional job summary
func (x *Output) Emit(ctx context.Context, outputs *model.ReleaseOutputs) error {
	if x.outputPath == "" {
		return goerr.New("GitHub Actions output file is not set", goerr.T(model.ErrTagConfiguration))
	}

	var buf bytes.Buffer
	for _, kv := range outputs.Pairs() {
		if err := writeOutput(&buf, kv[0], kv[1], x.delimiter()); err != nil {
			return err
		}
	}

	if err := appendFile(x.outputPath, buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to write step outputs", goerr.V("path", x.outputPath))
	}
	ctxlog.From(ctx).Debug("Wrote step outputs", "path", x.outputPath, "tag", outputs.Tag)

	// outputs are already written, a missing summary only gets logged
	if x.summaryPath != "" {
		summary := fmt.Sprintf("## %s\n\n%s\n", outputs.Name, outputs.Body)
		if err := appendFile(x.summaryPath, []byte(summary)); err != nil {
			ctxlog.From(ctx).Warn("Failed to write step summary", "error", err, "path", x.summaryPath)
		}
	}

	return nil
}

// writeOutput renders one value in the multiline form:
//
//	name<<DELIMITER
//	value
//	DELIMITER
func writeOutput(buf *bytes.Buffer, name, value, delimiter string) error {
	if strings.Contains(value, delimiter) || strings.Contains(name, delimiter) {
		return goerr.New("output collides with delimiter", goerr.V("name", name))
	}

	fmt.Fprintf(buf, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	return nil
}

func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
