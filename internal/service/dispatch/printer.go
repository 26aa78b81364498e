package dispatch

import (
	"fmt"
	"io"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// Printer emits a human-readable status line per transition to the
// operator-facing output stream. It is suppressed entirely in quiet mode
// and replaced by the chart handoff in chart mode; that selection happens
// at wiring time, not here.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Notify writes ACTIVE or INACTIVE followed by a newline.
func (p *Printer) Notify(state activity.State) error {
	if _, err := fmt.Fprintln(p.out, state); err != nil {
		return fmt.Errorf("print status: %w", err)
	}

	return nil
}
