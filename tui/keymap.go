package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit key.Binding
	confirm, back   key.Binding
	filter          key.Binding
	palette, reload key.Binding

	up, down, left, right key.Binding
	top, bottom           key.Binding
	showHelp              key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

// bind makes a binding whose help shows its first key.
func bind(description string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], description))
}

func newStatefulKeymap() *statefulKeymap {
	highlight := style.Fg(color.Orange)

	return &statefulKeymap{
		quit:      bind("quit", "q"),
		forceQuit: bind("quit", "ctrl+c", "ctrl+d"),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(highlight("enter"), highlight("inspect")),
		),
		back:     bind("back", "esc"),
		filter:   bind("filter", "/"),
		palette:  bind("palette", "p", "tab"),
		reload:   bind("reload", "r", "ctrl+r"),
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous page")),
		right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
		top:      bind("top", "g", "home"),
		bottom:   bind("bottom", "G", "end"),
		showHelp: bind("help", "?"),
	}
}

// help lists the short and full help of the current state. The short list
// is always a prefix of the full one.
func (k *statefulKeymap) help() (short, full []key.Binding) {
	var extra []key.Binding

	switch k.state {
	case loadingState:
		short = []key.Binding{k.forceQuit}
	case stylesState:
		short = []key.Binding{k.confirm, k.filter, relabel(k.palette, "show palette"), k.reload}
		extra = []key.Binding{k.top, k.bottom, k.quit}
	case paletteState:
		short = []key.Binding{k.filter, relabel(k.palette, "show styles"), k.reload}
		extra = []key.Binding{k.back, k.quit}
	case detailState:
		short = []key.Binding{k.back, k.reload, k.quit}
	case errorState:
		short = []key.Binding{k.reload, k.back, k.quit}
	}

	full = append(append([]key.Binding{}, short...), extra...)
	return short, full
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

// forList maps the previewer keys onto the bubbles list ones.
func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func relabel(k key.Binding, description string) key.Binding {
	return key.NewBinding(key.WithKeys(k.Keys()...), key.WithHelp(k.Help().Key, description))
}
