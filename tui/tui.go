// Package tui provides the interactive theme previewer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tuitheme/tuitheme/theme"
)

// Options encapsulates the runtime configuration for the previewer.
type Options struct {
	// Path of the theme document to preview.
	Path string
	// Sample is the text rendered in each style.
	Sample string
	// Decode is passed to the document decoder.
	Decode []theme.Option
}

// Run starts the previewer and blocks until it exits.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.setState(loadingState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
