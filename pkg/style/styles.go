// Package style holds the lipgloss styles for nvup's terminal output.
// pterm covers the stage prefixes; these styles dress the summary
// lines the bootstrap prints at the end.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors adapt to light and dark terminals
var (
	MutedColor = lipgloss.AdaptiveColor{
		Light: "#ADB5BD",
		Dark:  "#6C757D",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}
)

var (
	// MutedStyle renders de-emphasized annotations, like the comment
	// line above the config dump
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// PathStyle renders filesystem paths in the run summary
	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)
