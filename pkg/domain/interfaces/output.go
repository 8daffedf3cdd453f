package interfaces

import (
	"context"

	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

// OutputSink receives the rendered release outputs once per run
type OutputSink interface {
	Emit(ctx context.Context, outputs *model.ReleaseOutputs) error
}
