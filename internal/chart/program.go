package chart

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// Program wraps the bubbletea program. It runs on its own goroutine and
// owns the terminal exclusively for its whole lifetime; the caller tracks
// its termination to know when the consumer is gone.
type Program struct {
	prog *tea.Program
}

// NewProgram creates a chart program consuming transitions from updates.
func NewProgram(updates <-chan activity.State) *Program {
	return &Program{
		prog: tea.NewProgram(NewModel(updates)),
	}
}

// Run blocks until the chart exits by keypress or failure.
func (p *Program) Run() error {
	if _, err := p.prog.Run(); err != nil {
		return fmt.Errorf("run chart: %w", err)
	}

	return nil
}
