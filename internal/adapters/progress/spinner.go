package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"

	"github.com/mintcast-org/mintcast/internal/usecase"
)

// SpinnerSink shows a terminal spinner while a use case is working. The
// prediction itself is instant, but network resolution may block on an
// interactive prompt, so the spinner only runs for stages that ask for it.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress starts and stops the spinner based on the event's Spinner flag.
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}
