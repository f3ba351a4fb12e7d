package progress

import (
	"context"

	"github.com/mintcast-org/mintcast/internal/usecase"
)

// NopSink discards all progress events. Used for JSON output and tests.
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
