package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/samber/lo"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/theme"
	"github.com/tuitheme/tuitheme/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	stylesC  list.Model
	paletteC list.Model
	helpC    help.Model

	document *theme.Document
	selected *styleEntry
	problems int

	lastError error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := listExtraPaddingStyle.GetFrameSize()
	b.stylesC.SetSize(width-x, height-y)
	b.paletteC.SetSize(width-x, height-y)
	b.helpC.Width = width

	b.width, b.height = width, height
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		spinnerC:      spinner.New(),
		helpC:         help.New(),
		options:       options,
	}

	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = style.New().Fg(color.Purple).Lipgloss()

	type listOptions struct {
		title    string
		singular string
		plural   string
	}

	makeList := func(options listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetHeight(2)

		l := list.New(nil, delegate, 0, 0)
		l.KeyMap = bubble.keymap.forList()
		l.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		l.AdditionalFullHelpKeys = func() []key.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		l.Title = options.title
		l.Styles.Title = style.Colored(color.Indexed(230), color.Indexed(62)).Bold().Lipgloss().Padding(0, 1)
		l.SetStatusBarItemName(options.singular, options.plural)
		l.SetShowHelp(true)

		return l
	}

	bubble.stylesC = makeList(listOptions{title: "Styles", singular: "style", plural: "styles"})
	bubble.paletteC = makeList(listOptions{title: "Palette", singular: "color", plural: "colors"})

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
