package console

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// Printer shows the outputs on a terminal for local runs
type Printer struct {
	w     io.Writer
	label *color.Color
	value *color.Color
}

// New creates a Printer writing to w
func New(w io.Writer) *Printer {
	return &Printer{
		w:     w,
		label: color.New(color.FgCyan, color.Bold),
		value: color.New(color.FgGreen),
	}
}

// Emit prints each output as "name:" followed by its value
func (x *Printer) Emit(ctx context.Context, outputs *model.ReleaseOutputs) error {
	for _, kv := range outputs.Pairs() {
		if _, err := x.label.Fprintf(x.w, "%s:\n", kv[0]); err != nil {
			return goerr.Wrap(err, "failed to print output", goerr.V("name", kv[0]))
		}
		if _, err := x.value.Fprintf(x.w, "%s\n\n", kv[1]); err != nil {
			return goerr.Wrap(err, "failed to print output", goerr.V("name", kv[0]))
		}
	}
	return nil
}
