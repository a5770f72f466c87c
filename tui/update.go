package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tuitheme/tuitheme/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case documentLoadedMsg:
		cmd := b.setDocument(msg.document)
		if b.state == loadingState || b.state == errorState {
			b.statesHistory.Clear()
			b.setState(stylesState)
		}
		status := fmt.Sprintf("%s, %s", util.Quantify(len(msg.document.Styles), "style", "styles"), util.Quantify(b.problems, "problem", "problems"))
		return b, tea.Batch(cmd, b.stylesC.NewStatusMessage(status))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if b.filtering() {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.reload):
			if b.state == detailState {
				b.previousState()
			}
			if b.state == errorState {
				b.setState(loadingState)
			}
			return b, tea.Batch(b.startLoading(), b.loadDocument())
		case bubblesKey.Matches(msg, b.keymap.back):
			switch b.state {
			case detailState, paletteState:
				b.previousState()
				return b, nil
			case errorState:
				if b.document != nil {
					b.previousState()
					return b, nil
				}
				return b, tea.Quit
			}
		case bubblesKey.Matches(msg, b.keymap.palette):
			switch b.state {
			case stylesState:
				b.newState(paletteState)
				return b, nil
			case paletteState:
				b.previousState()
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.state == stylesState {
				if item, ok := b.stylesC.SelectedItem().(*listItem); ok {
					b.selected = item.internal.(*styleEntry)
					b.newState(detailState)
				}
				return b, nil
			}
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case stylesState:
		return b.updateList(&b.stylesC, msg)
	case paletteState:
		return b.updateList(&b.paletteC, msg)
	}

	return b, nil
}

func (b *statefulBubble) filtering() bool {
	switch b.state {
	case stylesState:
		return b.stylesC.FilterState() == list.Filtering
	case paletteState:
		return b.paletteC.FilterState() == list.Filtering
	}
	return false
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return b, nil
	}

	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateList(l *list.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return b, cmd
}
