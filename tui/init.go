package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts loading the document.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.startLoading(), b.loadDocument())
}
