package chart

import "github.com/charmbracelet/lipgloss"

var (
	// titleStyle renders the header line.
	titleStyle = lipgloss.NewStyle().Bold(true)

	// activeStyle renders cells and labels for the active state.
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// inactiveStyle renders cells and labels for the inactive state.
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// helpStyle renders the key hint at the bottom.
	helpStyle = lipgloss.NewStyle().Faint(true)
)
