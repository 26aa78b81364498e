package chart

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

const (
	// sampleInterval is the cadence at which the current state is appended
	// to the timeline.
	sampleInterval = 500 * time.Millisecond

	// defaultWidth is used until the first window-size message arrives.
	defaultWidth = 80

	// activeCell and inactiveCell are the timeline glyphs.
	activeCell   = "▇"
	inactiveCell = "▁"
)

// transitionMsg carries a new classification from the dispatcher.
type transitionMsg activity.State

// tickMsg advances the timeline by one sample.
type tickMsg time.Time

// Model holds the chart state: the latest classification and a scrolling
// window of timeline samples.
type Model struct {
	updates <-chan activity.State

	current  activity.State
	samples  []activity.State
	width    int
	quitting bool
}

// NewModel creates a chart model consuming transitions from updates.
func NewModel(updates <-chan activity.State) Model {
	return Model{
		updates: updates,
		width:   defaultWidth,
	}
}

// Init starts the transition listener and the sample ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForTransition(m.updates), tick())
}

// waitForTransition blocks on the single-slot handoff channel.
func waitForTransition(updates <-chan activity.State) tea.Cmd {
	return func() tea.Msg {
		return transitionMsg(<-updates)
	}
}

func tick() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles transitions, timeline ticks, resizes and the exit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transitionMsg:
		m.current = activity.State(msg)

		return m, waitForTransition(m.updates)

	case tickMsg:
		m.samples = append(m.samples, m.current)
		if limit := m.timelineWidth(); len(m.samples) > limit {
			m.samples = m.samples[len(m.samples)-limit:]
		}

		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true

			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the header, the timeline strip and the key hint.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	label := inactiveStyle.Render(m.current.String())
	if m.current == activity.Active {
		label = activeStyle.Render(m.current.String())
	}

	var timeline strings.Builder
	for _, s := range m.samples {
		if s == activity.Active {
			timeline.WriteString(activeStyle.Render(activeCell))
		} else {
			timeline.WriteString(inactiveStyle.Render(inactiveCell))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("mouse-sentry"))
	b.WriteString("  ")
	b.WriteString(label)
	b.WriteString("\n\n")
	b.WriteString(timeline.String())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("q: quit"))
	b.WriteString("\n")

	return b.String()
}

// timelineWidth is how many samples fit on one terminal row.
func (m Model) timelineWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}

	return m.width
}
